// Package storage defines the durable store contract for the ledger.
//
// A Store holds one Snapshot: the full expense collection plus the
// three user preferences. Load must never fail startup: missing,
// malformed, or unreadable data degrades to DefaultSnapshot. Save
// overwrites the persisted state and is called synchronously after
// every mutation; callers log and continue on Save errors.
package storage

import (
	"context"

	"github.com/spendlog/spendlog/internal/expense"
)

// Snapshot is the complete persisted state.
type Snapshot struct {
	Expenses    []expense.Expense
	Preferences expense.Preferences
}

// DefaultSnapshot is the state used when nothing has been saved yet or
// the saved data cannot be read back.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Expenses:    []expense.Expense{},
		Preferences: expense.DefaultPreferences(),
	}
}

type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}
