// Package tabular flattens the ledger into a fixed six-column CSV
// layout and reconstructs it. The flattening is lossy by design:
// record ids are regenerated on import and savings-goal contribution
// history is dropped (only the running total survives in the
// "current/target" amount cell).
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/id"
	"github.com/penny-dev/penny/internal/ledger"
	"github.com/penny-dev/penny/internal/model"
)

// Header is the CSV header row.
const Header = "Type,Amount,Description,Date,Category,Details"

const (
	numFields   = 6
	colType     = 0
	colAmount   = 1
	colDesc     = 2
	colDate     = 3
	colCategory = 4
	colDetails  = 5
)

// Row type discriminants.
const (
	typeIncome  = "Income"
	typeExpense = "Expense"
	typeGoal    = "Savings Goal"
)

// amountCell formats an amount the way existing export files carry
// them: integral values keep a trailing ".0".
func amountCell(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// boolCell renders a boolean inside a composite Details cell.
func boolCell(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Write writes the whole ledger as CSV: header, then income rows,
// expense rows, and savings goal rows.
func Write(w io.Writer, l *ledger.Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, in := range l.Incomes {
		if err := cw.Write(MarshalIncome(in)); err != nil {
			return fmt.Errorf("writing income row: %w", err)
		}
	}
	for _, e := range l.Expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing expense row: %w", err)
		}
	}
	for _, g := range l.SavingsGoals {
		if err := cw.Write(MarshalGoal(g)); err != nil {
			return fmt.Errorf("writing savings goal row: %w", err)
		}
	}
	return cw.Error()
}

// MarshalIncome converts an Income to a CSV row.
func MarshalIncome(in model.Income) []string {
	row := make([]string, numFields)
	row[colType] = typeIncome
	row[colAmount] = amountCell(in.Amount)
	row[colDesc] = in.Description
	row[colDate] = in.Date.String()
	row[colCategory] = in.Source
	row[colDetails] = fmt.Sprintf("Frequency: %s, Target: %s", in.Frequency, boolCell(in.IsTarget))
	return row
}

// MarshalExpense converts an Expense to a CSV row. Category and
// subcategory pack into one "category/subcategory" cell.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colType] = typeExpense
	row[colAmount] = amountCell(e.Amount)
	row[colDesc] = e.Description
	row[colDate] = e.Date.String()
	row[colCategory] = fmt.Sprintf("%s/%s", e.Category, e.Subcategory)
	row[colDetails] = fmt.Sprintf("Recurring: %s", boolCell(e.IsRecurring))
	return row
}

// MarshalGoal converts a SavingsGoal to a CSV row. The amount cell
// packs progress as "current/target"; the date cell is the deadline or
// empty.
func MarshalGoal(g model.SavingsGoal) []string {
	row := make([]string, numFields)
	row[colType] = typeGoal
	row[colAmount] = amountCell(g.CurrentAmount) + "/" + amountCell(g.TargetAmount)
	row[colDesc] = g.Name
	if g.Deadline != nil {
		row[colDate] = g.Deadline.String()
	}
	row[colCategory] = string(g.Category)
	row[colDetails] = fmt.Sprintf("Priority: %d", g.Priority)
	return row
}

// Read reconstructs a ledger from CSV. Any malformed row fails the
// whole read; there is no row-level recovery. Ids are freshly
// generated and contribution histories come back empty.
func Read(r io.Reader) (*ledger.Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, model.FormatError{Msg: "reading CSV", Err: err}
	}

	l := ledger.New()
	if len(records) == 0 {
		return l, nil
	}

	if strings.Join(records[0], ",") != Header {
		return nil, model.Formatf("missing header row, got %q", strings.Join(records[0], ","))
	}

	for i, rec := range records[1:] {
		rowNum := i + 2
		switch rec[colType] {
		case typeIncome:
			in, err := UnmarshalIncome(rec)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			l.Incomes = append(l.Incomes, in)
		case typeExpense:
			e, err := UnmarshalExpense(rec)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			l.Expenses = append(l.Expenses, e)
		case typeGoal:
			g, err := UnmarshalGoal(rec)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rowNum, err)
			}
			l.SavingsGoals = append(l.SavingsGoals, g)
		default:
			return nil, model.Formatf("row %d: unrecognized record type %q", rowNum, rec[colType])
		}
	}
	return l, nil
}

// UnmarshalIncome converts a CSV row to an Income with a fresh id.
func UnmarshalIncome(rec []string) (model.Income, error) {
	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.Income{}, model.FormatError{Msg: fmt.Sprintf("parsing amount %q", rec[colAmount]), Err: err}
	}
	day, err := model.ParseDate(rec[colDate])
	if err != nil {
		return model.Income{}, model.FormatError{Msg: fmt.Sprintf("parsing date %q", rec[colDate]), Err: err}
	}

	// The Details cell reads "Frequency: {frequency}, Target: {bool}".
	details := rec[colDetails]
	first, _, _ := strings.Cut(details, ",")
	_, freq, ok := strings.Cut(first, ":")
	if !ok {
		return model.Income{}, model.Formatf("details %q missing frequency", details)
	}

	return model.Income{
		ID:          id.New(),
		Type:        "income",
		Amount:      amount,
		Description: rec[colDesc],
		Date:        day,
		Source:      rec[colCategory],
		Frequency:   model.Frequency(strings.TrimSpace(freq)),
		// A coarse substring test, kept for compatibility with files
		// written by earlier versions.
		IsTarget: strings.Contains(details, "True"),
	}, nil
}

// UnmarshalExpense converts a CSV row to an Expense with a fresh id.
func UnmarshalExpense(rec []string) (model.Expense, error) {
	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.Expense{}, model.FormatError{Msg: fmt.Sprintf("parsing amount %q", rec[colAmount]), Err: err}
	}
	day, err := model.ParseDate(rec[colDate])
	if err != nil {
		return model.Expense{}, model.FormatError{Msg: fmt.Sprintf("parsing date %q", rec[colDate]), Err: err}
	}

	category, subcategory, ok := strings.Cut(rec[colCategory], "/")
	if !ok {
		return model.Expense{}, model.Formatf("category %q missing %q separator", rec[colCategory], "/")
	}

	return model.Expense{
		ID:          id.New(),
		Type:        "expense",
		Amount:      amount,
		Description: rec[colDesc],
		Date:        day,
		Category:    model.ExpenseCategory(category),
		Subcategory: subcategory,
		IsRecurring: strings.Contains(rec[colDetails], "True"),
	}, nil
}

// UnmarshalGoal converts a CSV row to a SavingsGoal with a fresh id
// and an empty contribution history.
func UnmarshalGoal(rec []string) (model.SavingsGoal, error) {
	currentCell, targetCell, ok := strings.Cut(rec[colAmount], "/")
	if !ok {
		return model.SavingsGoal{}, model.Formatf("amount %q missing %q separator", rec[colAmount], "/")
	}
	current, err := decimal.NewFromString(currentCell)
	if err != nil {
		return model.SavingsGoal{}, model.FormatError{Msg: fmt.Sprintf("parsing current amount %q", currentCell), Err: err}
	}
	target, err := decimal.NewFromString(targetCell)
	if err != nil {
		return model.SavingsGoal{}, model.FormatError{Msg: fmt.Sprintf("parsing target amount %q", targetCell), Err: err}
	}

	var deadline *model.Date
	if rec[colDate] != "" {
		day, err := model.ParseDate(rec[colDate])
		if err != nil {
			return model.SavingsGoal{}, model.FormatError{Msg: fmt.Sprintf("parsing deadline %q", rec[colDate]), Err: err}
		}
		deadline = &day
	}

	_, prio, ok := strings.Cut(rec[colDetails], ":")
	if !ok {
		return model.SavingsGoal{}, model.Formatf("details %q missing priority", rec[colDetails])
	}
	priority, err := strconv.Atoi(strings.TrimSpace(prio))
	if err != nil {
		return model.SavingsGoal{}, model.FormatError{Msg: fmt.Sprintf("parsing priority %q", prio), Err: err}
	}

	return model.SavingsGoal{
		ID:            id.New(),
		Name:          rec[colDesc],
		TargetAmount:  target,
		CurrentAmount: current,
		Category:      model.SavingsCategory(rec[colCategory]),
		Deadline:      deadline,
		Priority:      priority,
		Contributions: []model.Contribution{},
	}, nil
}
