package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/id"
)

// Frequency classifies how often an income repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyOneTime Frequency = "one-time"
)

// ParseFrequency validates a frequency string from user input.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly, FrequencyOneTime:
		return f, nil
	default:
		return "", fmt.Errorf("unknown frequency %q", s)
	}
}

// Income is a realized or targeted income event.
type Income struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	Source      string          `json:"source"`
	Frequency   Frequency       `json:"frequency"`
	IsTarget    bool            `json:"is_target"`
}

// NewIncome creates an Income dated today. An empty description
// defaults to "Income from {source}".
func NewIncome(amount decimal.Decimal, source string, frequency Frequency, description string, isTarget bool) (Income, error) {
	if amount.Sign() <= 0 {
		return Income{}, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if description == "" {
		description = "Income from " + source
	}
	return Income{
		ID:          id.New(),
		Type:        "income",
		Amount:      amount,
		Description: description,
		Date:        Today(),
		Source:      source,
		Frequency:   frequency,
		IsTarget:    isTarget,
	}, nil
}
