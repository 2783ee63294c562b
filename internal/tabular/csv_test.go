package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penny-dev/penny/internal/ledger"
	"github.com/penny-dev/penny/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func income(t *testing.T, amount, source string, freq model.Frequency, target bool) model.Income {
	t.Helper()
	in, err := model.NewIncome(dec(amount), source, freq, "", target)
	require.NoError(t, err)
	return in
}

func expense(t *testing.T, amount string, cat model.ExpenseCategory, sub string, recurring bool) model.Expense {
	t.Helper()
	e, err := model.NewExpense(dec(amount), cat, sub, "", recurring)
	require.NoError(t, err)
	return e
}

func TestMarshalIncome_Cells(t *testing.T) {
	in := income(t, "100", "Job", model.FrequencyMonthly, false)
	in.Date = model.NewDate(2025, 3, 1)

	row := MarshalIncome(in)
	assert.Equal(t, "Income", row[colType])
	assert.Equal(t, "100.0", row[colAmount])
	assert.Equal(t, "Income from Job", row[colDesc])
	assert.Equal(t, "2025-03-01", row[colDate])
	assert.Equal(t, "Job", row[colCategory])
	assert.Equal(t, "Frequency: monthly, Target: False", row[colDetails])
}

func TestMarshalExpense_Cells(t *testing.T) {
	e := expense(t, "30", model.CategoryBusiness, "software", true)
	row := MarshalExpense(e)
	assert.Equal(t, "Expense", row[colType])
	assert.Equal(t, "30.0", row[colAmount])
	assert.Equal(t, "business/software", row[colCategory])
	assert.Equal(t, "Recurring: True", row[colDetails])
}

func TestMarshalGoal_Cells(t *testing.T) {
	g, err := model.NewSavingsGoal("Laptop", dec("1000"), model.SavingsElectronics, nil, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddContribution(dec("250"), model.Today()))
	require.NoError(t, g.AddContribution(dec("100"), model.Today()))

	row := MarshalGoal(g)
	assert.Equal(t, "Savings Goal", row[colType])
	assert.Equal(t, "350.0/1000.0", row[colAmount])
	assert.Equal(t, "Laptop", row[colDesc])
	assert.Empty(t, row[colDate], "no deadline means empty date cell")
	assert.Equal(t, "electronics", row[colCategory])
	assert.Equal(t, "Priority: 2", row[colDetails])
}

func TestMarshalGoal_Deadline(t *testing.T) {
	deadline := model.NewDate(2026, 12, 31)
	g, err := model.NewSavingsGoal("Laptop", dec("1000"), model.SavingsElectronics, &deadline, 2)
	require.NoError(t, err)
	row := MarshalGoal(g)
	assert.Equal(t, "2026-12-31", row[colDate])
}

func TestAmountCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"350", "350.0"},
		{"350.25", "350.25"},
		{"1000", "1000.0"},
		{"0.5", "0.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, amountCell(dec(tt.input)), "input %q", tt.input)
	}
}

func TestRoundTrip(t *testing.T) {
	l := ledger.New()
	in := income(t, "100", "Job", model.FrequencyMonthly, false)
	in.Date = model.NewDate(2025, 3, 1)
	l.AppendIncome(in)
	l.AppendIncome(income(t, "50", "Freelance", model.FrequencyOneTime, true))
	l.AppendExpense(expense(t, "30.25", model.CategoryBusiness, "software", true))

	g, err := model.NewSavingsGoal("Laptop", dec("1000"), model.SavingsElectronics, nil, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddContribution(dec("350"), model.Today()))
	l.AppendGoal(g)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l))
	assert.True(t, strings.HasPrefix(buf.String(), Header))

	got, err := Read(&buf)
	require.NoError(t, err)

	require.Len(t, got.Incomes, 2)
	gotIn := got.Incomes[0]
	assert.True(t, gotIn.Amount.Equal(dec("100")))
	assert.Equal(t, "Income from Job", gotIn.Description)
	assert.Equal(t, "2025-03-01", gotIn.Date.String())
	assert.Equal(t, "Job", gotIn.Source)
	assert.Equal(t, model.FrequencyMonthly, gotIn.Frequency)
	assert.False(t, gotIn.IsTarget)
	assert.True(t, got.Incomes[1].IsTarget)
	// Ids are regenerated, not preserved.
	assert.NotEqual(t, in.ID, gotIn.ID)
	assert.NotEmpty(t, gotIn.ID)

	require.Len(t, got.Expenses, 1)
	gotEx := got.Expenses[0]
	assert.True(t, gotEx.Amount.Equal(dec("30.25")))
	assert.Equal(t, model.CategoryBusiness, gotEx.Category)
	assert.Equal(t, "software", gotEx.Subcategory)
	assert.True(t, gotEx.IsRecurring)

	require.Len(t, got.SavingsGoals, 1)
	gotGoal := got.SavingsGoals[0]
	assert.Equal(t, "Laptop", gotGoal.Name)
	assert.True(t, gotGoal.CurrentAmount.Equal(dec("350")))
	assert.True(t, gotGoal.TargetAmount.Equal(dec("1000")))
	assert.Equal(t, model.SavingsElectronics, gotGoal.Category)
	assert.Equal(t, 2, gotGoal.Priority)
	assert.Nil(t, gotGoal.Deadline)
	// Contribution history does not survive the flat form.
	assert.NotNil(t, gotGoal.Contributions)
	assert.Empty(t, gotGoal.Contributions)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.NoError(t, got.Validate())
	assert.Empty(t, got.Incomes)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := Read(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got.Incomes)
	assert.Equal(t, ledger.SchemaVersion, got.Version)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"unknown type", `Donation,10.0,x,2025-01-01,misc,none`},
		{"non-numeric income amount", `Income,lots,x,2025-01-01,Job,"Frequency: monthly, Target: False"`},
		{"bad income date", `Income,10.0,x,someday,Job,"Frequency: monthly, Target: False"`},
		{"income details missing frequency", `Income,10.0,x,2025-01-01,Job,whatever`},
		{"expense category missing slash", `Expense,10.0,x,2025-01-01,business,Recurring: False`},
		{"goal amount missing slash", `Savings Goal,350.0,Laptop,,electronics,Priority: 2`},
		{"goal non-numeric target", `Savings Goal,350.0/lots,Laptop,,electronics,Priority: 2`},
		{"goal non-numeric priority", `Savings Goal,350.0/1000.0,Laptop,,electronics,Priority: high`},
		{"goal details missing colon", `Savings Goal,350.0/1000.0,Laptop,,electronics,urgent`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(Header + "\n" + tt.row + "\n"))
			var ferr model.FormatError
			require.ErrorAs(t, err, &ferr)
		})
	}
}

func TestRead_WrongColumnCount(t *testing.T) {
	_, err := Read(strings.NewReader(Header + "\nIncome,10.0,x\n"))
	var ferr model.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestRead_MissingHeader(t *testing.T) {
	_, err := Read(strings.NewReader(`Income,10.0,x,2025-01-01,Job,"Frequency: monthly, Target: False"` + "\n"))
	var ferr model.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestRead_TrueSubstringQuirk(t *testing.T) {
	// The boolean test is a substring match over the whole Details
	// cell, kept for compatibility with files written by earlier
	// versions. "True" anywhere flips the flag.
	row := `Income,10.0,x,2025-01-01,Job,"Frequency: True north, Target: False"`
	got, err := Read(strings.NewReader(Header + "\n" + row + "\n"))
	require.NoError(t, err)
	require.Len(t, got.Incomes, 1)
	assert.True(t, got.Incomes[0].IsTarget)
	assert.Equal(t, model.Frequency("True north"), got.Incomes[0].Frequency)
}

func TestWrite_QuotesCompositeCells(t *testing.T) {
	l := ledger.New()
	l.AppendIncome(income(t, "10", "Job", model.FrequencyMonthly, false))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, l))
	// The Details cell contains a comma, so the CSV writer must quote it.
	assert.Contains(t, buf.String(), `"Frequency: monthly, Target: False"`)
}
