// Package finance wires the ledger, codecs, and storage together
// behind the operations the CLI drives.
package finance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/penny-dev/penny/internal/ledger"
	"github.com/penny-dev/penny/internal/model"
	"github.com/penny-dev/penny/internal/storage"
)

// Manager owns the in-memory ledger for the process lifetime. Every
// mutation is followed by a synchronous save through the storage port;
// there is no write-behind and no in-memory-only mode.
type Manager struct {
	store  storage.Store
	codecs *Registry
	ledger *ledger.Ledger
}

// NewManager loads the ledger through the given store.
func NewManager(store storage.Store) (*Manager, error) {
	l, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return &Manager{store: store, codecs: DefaultRegistry(), ledger: l}, nil
}

// Ledger returns the live ledger. Callers borrow it; mutation goes
// through the Manager so every change is persisted.
func (m *Manager) Ledger() *ledger.Ledger { return m.ledger }

// AddIncome appends an income record and saves.
func (m *Manager) AddIncome(in model.Income) error {
	m.ledger.AppendIncome(in)
	return m.save()
}

// AddExpense appends an expense record and saves.
func (m *Manager) AddExpense(e model.Expense) error {
	m.ledger.AppendExpense(e)
	return m.save()
}

// AddGoal appends a savings goal and saves.
func (m *Manager) AddGoal(g model.SavingsGoal) error {
	m.ledger.AppendGoal(g)
	return m.save()
}

// Contribute applies amount to the goal with the given id, dated
// today, and saves. Returns false when no goal matches. The amount
// must already be validated positive by the caller.
func (m *Manager) Contribute(goalID string, amount decimal.Decimal) (bool, error) {
	if !m.ledger.Contribute(goalID, amount, model.Today()) {
		return false, nil
	}
	if err := m.save(); err != nil {
		return true, err
	}
	return true, nil
}

// Summary computes the current financial overview. Pure read.
func (m *Manager) Summary() ledger.Summary {
	return m.ledger.Summary()
}

// Export writes the ledger to path in the named format ("json" or
// "csv"). An empty path falls back to penny_export.{format}. Returns
// the path written.
func (m *Manager) Export(format, path string) (string, error) {
	c := m.codecs.Get(format)
	if c == nil {
		return "", model.Formatf("unsupported export format %q", format)
	}
	if path == "" {
		path = "penny_export." + c.Format()
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := c.Encode(f, m.ledger); err != nil {
		return "", fmt.Errorf("exporting to %s: %w", path, err)
	}
	return path, nil
}

// Import reads path, dispatching on its extension, and replaces the
// ledger wholesale. Decoding and validation complete before any
// in-memory state changes, so a failed import leaves the prior ledger
// intact.
func (m *Manager) Import(path string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c := m.codecs.Get(ext)
	if c == nil {
		return model.Formatf("unsupported import format %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	imported, err := c.Decode(f)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	return m.Replace(imported)
}

// Replace swaps the whole ledger after a structural check and saves.
func (m *Manager) Replace(l *ledger.Ledger) error {
	if err := l.Validate(); err != nil {
		return err
	}
	m.ledger = l
	return m.save()
}

func (m *Manager) save() error {
	if err := m.store.Save(m.ledger); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}
