// Package ledger owns the in-memory expense collection and the user
// preferences, and is the only place mutations happen. Every mutation
// persists synchronously through the configured Store; a failed save
// is logged and swallowed so the user flow never breaks on storage
// trouble.
package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/storage"
)

var ErrMissingDate = errors.New("date is required")

// Input is a candidate expense as entered by the user. Amount is kept
// as raw text so the tolerant numeric coercion happens in exactly one
// place, at the add boundary.
type Input struct {
	Amount   string
	Date     expense.Date
	Category expense.Category
	Note     string
}

type Ledger struct {
	store  storage.Store
	logger *logger.Logger

	expenses []expense.Expense
	prefs    expense.Preferences
	nextID   int64
}

// New loads the persisted snapshot into a fresh ledger. Load never
// fails startup; the store degrades to defaults on malformed data.
func New(ctx context.Context, store storage.Store, log *logger.Logger) (*Ledger, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		// stores are expected to degrade instead, but keep the
		// never-crash-on-load contract either way
		log.Warn("unable to load ledger, starting from defaults", "error", err.Error())
		snap = storage.DefaultSnapshot()
	}

	l := &Ledger{
		store:    store,
		logger:   log,
		expenses: snap.Expenses,
		prefs:    snap.Preferences,
		nextID:   1,
	}

	// Seed the ID counter past everything already persisted. A
	// monotonic counter keeps IDs unique without the collision risk of
	// timestamp-derived IDs.
	for _, e := range l.expenses {
		if e.ID >= l.nextID {
			l.nextID = e.ID + 1
		}
	}

	return l, nil
}

// Add validates the candidate and appends it as a new record. Rejected
// candidates leave the collection untouched.
func (l *Ledger) Add(ctx context.Context, input Input) (expense.Expense, error) {
	amount, err := expense.ParseAmount(input.Amount)
	if err != nil {
		return expense.Expense{}, err
	}

	if input.Date.IsZero() {
		return expense.Expense{}, ErrMissingDate
	}

	category, err := expense.ParseCategory(string(input.Category))
	if err != nil {
		return expense.Expense{}, err
	}

	e := expense.Expense{
		ID:       l.nextID,
		Amount:   amount,
		Date:     input.Date,
		Category: category,
		Note:     strings.TrimSpace(input.Note),
	}

	l.nextID++
	l.expenses = append(l.expenses, e)
	l.persist(ctx)

	return e, nil
}

// Remove deletes the record with the given ID. Removing an absent ID
// is a no-op, not an error.
func (l *Ledger) Remove(ctx context.Context, id int64) bool {
	for i, e := range l.expenses {
		if e.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			l.persist(ctx)
			return true
		}
	}
	return false
}

// Expenses returns a copy of the collection in display order: date
// descending, ties broken by ID descending so the newest record of a
// day comes first.
func (l *Ledger) Expenses() []expense.Expense {
	expenses := make([]expense.Expense, len(l.expenses))
	copy(expenses, l.expenses)

	sort.SliceStable(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].ID > expenses[j].ID
	})

	return expenses
}

func (l *Ledger) Preferences() expense.Preferences {
	return l.prefs
}

func (l *Ledger) SetCurrency(ctx context.Context, symbol string) error {
	if !expense.ValidCurrency(symbol) {
		return expense.ErrUnknownCurrency
	}
	l.prefs.Currency = symbol
	l.persist(ctx)
	return nil
}

// SetBudget coerces the raw budget input. Non-numeric or negative
// values mean "no budget"; the call never fails.
func (l *Ledger) SetBudget(ctx context.Context, raw string) {
	l.prefs.Budget = expense.ParseBudget(raw)
	l.persist(ctx)
}

func (l *Ledger) SetTheme(ctx context.Context, raw string) error {
	theme, err := expense.ParseTheme(raw)
	if err != nil {
		return err
	}
	l.prefs.Theme = theme
	l.persist(ctx)
	return nil
}

func (l *Ledger) persist(ctx context.Context) {
	snap := storage.Snapshot{
		Expenses:    l.expenses,
		Preferences: l.prefs,
	}
	if err := l.store.Save(ctx, snap); err != nil {
		l.logger.Warn("unable to persist ledger", "error", err.Error())
	}
}
