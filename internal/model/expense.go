package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/id"
)

// ExpenseCategory is the top-level expense classification.
type ExpenseCategory string

const (
	CategoryBusiness ExpenseCategory = "business"
	CategoryPersonal ExpenseCategory = "personal"
)

// ParseExpenseCategory validates an expense category string from user input.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch c := ExpenseCategory(s); c {
	case CategoryBusiness, CategoryPersonal:
		return c, nil
	default:
		return "", fmt.Errorf("unknown expense category %q", s)
	}
}

// Expense is a single spending event.
type Expense struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Subcategory string          `json:"subcategory"`
	IsRecurring bool            `json:"is_recurring"`
}

// NewExpense creates an Expense dated today. An empty description
// defaults to "{category} expense: {subcategory}".
func NewExpense(amount decimal.Decimal, category ExpenseCategory, subcategory, description string, isRecurring bool) (Expense, error) {
	if amount.Sign() <= 0 {
		return Expense{}, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if description == "" {
		description = fmt.Sprintf("%s expense: %s", category, subcategory)
	}
	return Expense{
		ID:          id.New(),
		Type:        "expense",
		Amount:      amount,
		Description: description,
		Date:        Today(),
		Category:    category,
		Subcategory: subcategory,
		IsRecurring: isRecurring,
	}, nil
}
