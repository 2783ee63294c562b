package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/id"
)

// SavingsCategory classifies what a savings goal is for.
type SavingsCategory string

const (
	SavingsShortTerm   SavingsCategory = "short-term"
	SavingsEmergency   SavingsCategory = "emergency"
	SavingsLongTerm    SavingsCategory = "long-term"
	SavingsElectronics SavingsCategory = "electronics"
	SavingsOther       SavingsCategory = "other"
)

// ParseSavingsCategory validates a savings category string from user input.
func ParseSavingsCategory(s string) (SavingsCategory, error) {
	switch c := SavingsCategory(s); c {
	case SavingsShortTerm, SavingsEmergency, SavingsLongTerm, SavingsElectronics, SavingsOther:
		return c, nil
	default:
		return "", fmt.Errorf("unknown savings category %q", s)
	}
}

// Contribution is one payment toward a savings goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
}

// SavingsGoal tracks progress toward a target amount. CurrentAmount is
// the running sum of Contributions applied through AddContribution.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Category      SavingsCategory `json:"category"`
	Deadline      *Date           `json:"deadline"`
	Priority      int             `json:"priority"`
	Contributions []Contribution  `json:"contributions"`
}

// NewSavingsGoal creates a SavingsGoal with no contributions yet.
// Priority runs 1 (highest) to 5 (lowest).
func NewSavingsGoal(name string, target decimal.Decimal, category SavingsCategory, deadline *Date, priority int) (SavingsGoal, error) {
	if target.Sign() <= 0 {
		return SavingsGoal{}, ValidationError{Field: "target_amount", Reason: "must be positive"}
	}
	if priority < 1 || priority > 5 {
		return SavingsGoal{}, ValidationError{Field: "priority", Reason: fmt.Sprintf("must be between 1 and 5, got %d", priority)}
	}
	return SavingsGoal{
		ID:            id.New(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Category:      category,
		Deadline:      deadline,
		Priority:      priority,
		Contributions: []Contribution{},
	}, nil
}

// AddContribution applies a payment to the goal, updating the running
// total and the contribution history together.
func (g *SavingsGoal) AddContribution(amount decimal.Decimal, day Date) error {
	if amount.Sign() <= 0 {
		return ValidationError{Field: "amount", Reason: "must be positive"}
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Contributions = append(g.Contributions, Contribution{Amount: amount, Date: day})
	return nil
}
