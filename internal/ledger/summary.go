package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/model"
)

// Summary is a point-in-time financial overview. Building one never
// mutates the ledger.
type Summary struct {
	NetBalance     decimal.Decimal     `json:"net_balance"`
	TotalIncome    decimal.Decimal     `json:"total_income"`
	TotalExpenses  decimal.Decimal     `json:"total_expenses"`
	TotalSavings   decimal.Decimal     `json:"total_savings"`
	IncomeTargets  []model.Income      `json:"income_targets"`
	ExpenseTargets []model.Expense     `json:"expense_targets"`
	SavingsGoals   []model.SavingsGoal `json:"savings_goals"`
}

// Summary computes totals across the ledger. Target incomes are
// aspirational and excluded from TotalIncome; all expenses count
// toward TotalExpenses, recurring or not.
func (l *Ledger) Summary() Summary {
	totalIncome := decimal.Zero
	var incomeTargets []model.Income
	for _, in := range l.Incomes {
		if in.IsTarget {
			incomeTargets = append(incomeTargets, in)
			continue
		}
		totalIncome = totalIncome.Add(in.Amount)
	}

	totalExpenses := decimal.Zero
	var expenseTargets []model.Expense
	for _, e := range l.Expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
		if e.IsRecurring {
			expenseTargets = append(expenseTargets, e)
		}
	}

	totalSavings := decimal.Zero
	for _, g := range l.SavingsGoals {
		totalSavings = totalSavings.Add(g.CurrentAmount)
	}

	return Summary{
		NetBalance:     totalIncome.Sub(totalExpenses),
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		TotalSavings:   totalSavings,
		IncomeTargets:  incomeTargets,
		ExpenseTargets: expenseTargets,
		SavingsGoals:   l.SavingsGoals,
	}
}
