package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/model"
)

// Amounts encode as plain JSON numbers in the data file, not quoted
// strings. Decoding accepts both.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var requiredKeys = []string{"incomes", "expenses", "savings_goals"}

// Encode writes the ledger in its structured form: indented JSON with
// dates as "2006-01-02" strings and enums as their string values.
func Encode(w io.Writer, l *Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Decode reads a ledger from its structured form. Only the presence of
// the three top-level collections is checked; their contents are
// accepted verbatim without re-running construction validation. That
// trust boundary is deliberate: imported structured data may carry,
// for example, a current_amount that disagrees with its contribution
// history.
func Decode(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, model.FormatError{Msg: "parsing ledger JSON", Err: err}
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, model.Formatf("invalid data format: missing %q", key)
		}
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, model.FormatError{Msg: "decoding ledger", Err: err}
	}

	// A key holding null decodes to a nil slice; normalize so the
	// collections stay present on the next save.
	if l.Incomes == nil {
		l.Incomes = []model.Income{}
	}
	if l.Expenses == nil {
		l.Expenses = []model.Expense{}
	}
	if l.SavingsGoals == nil {
		l.SavingsGoals = []model.SavingsGoal{}
	}
	if l.Version == "" {
		l.Version = SchemaVersion
	}
	return &l, nil
}
