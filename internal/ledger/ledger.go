package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/model"
)

// SchemaVersion is the schema tag written to new data files.
const SchemaVersion = "0.0.1"

// Ledger is the in-memory aggregate of all records and goals. It owns
// every record for the process lifetime; codecs and storage only
// borrow references to serialize.
type Ledger struct {
	Incomes      []model.Income      `json:"incomes"`
	Expenses     []model.Expense     `json:"expenses"`
	SavingsGoals []model.SavingsGoal `json:"savings_goals"`
	Version      string              `json:"version"`
}

// New returns an empty ledger at the current schema version. The
// collections are non-nil so the structured encoding always carries
// all three keys.
func New() *Ledger {
	return &Ledger{
		Incomes:      []model.Income{},
		Expenses:     []model.Expense{},
		SavingsGoals: []model.SavingsGoal{},
		Version:      SchemaVersion,
	}
}

// AppendIncome adds an income record.
func (l *Ledger) AppendIncome(in model.Income) {
	l.Incomes = append(l.Incomes, in)
}

// AppendExpense adds an expense record.
func (l *Ledger) AppendExpense(e model.Expense) {
	l.Expenses = append(l.Expenses, e)
}

// AppendGoal adds a savings goal.
func (l *Ledger) AppendGoal(g model.SavingsGoal) {
	l.SavingsGoals = append(l.SavingsGoals, g)
}

// Contribute applies amount to the goal with the given id, dated day.
// Returns false when no goal matches; absence is a normal outcome, not
// an error. The amount must already be validated positive by the
// caller.
func (l *Ledger) Contribute(goalID string, amount decimal.Decimal, day model.Date) bool {
	for i := range l.SavingsGoals {
		g := &l.SavingsGoals[i]
		if g.ID != goalID {
			continue
		}
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		g.Contributions = append(g.Contributions, model.Contribution{Amount: amount, Date: day})
		return true
	}
	return false
}

// Validate checks that all three collections are present. Imported
// data is not revalidated record by record; this is the whole
// structural check.
func (l *Ledger) Validate() error {
	if l.Incomes == nil || l.Expenses == nil || l.SavingsGoals == nil {
		return model.Formatf("invalid data format: incomes, expenses, and savings_goals are required")
	}
	return nil
}
