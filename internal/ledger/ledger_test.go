package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spendlog/spendlog/internal/aggregate"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/storage"
	"github.com/spendlog/spendlog/internal/storage/jsonfile"
	"github.com/spendlog/spendlog/internal/testutil"
)

func TestAddIncreasesTotalByAmount(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	before := aggregate.TotalAll(l.Expenses())

	_, err := l.Add(ctx, ledger.Input{
		Amount:   "42.5",
		Date:     expense.MustParseDate("2024-03-15"),
		Category: expense.CategoryFood,
		Note:     "Lunch ",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	after := aggregate.TotalAll(l.Expenses())
	if after-before != 42.5 {
		t.Errorf("total increased by %v, want 42.5", after-before)
	}
}

func TestAddTrimsNote(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	e, err := l.Add(ctx, ledger.Input{
		Amount:   "42.5",
		Date:     expense.MustParseDate("2024-03-15"),
		Category: expense.CategoryFood,
		Note:     "Lunch ",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if e.Note != "Lunch" {
		t.Errorf("Note = %q, want %q", e.Note, "Lunch")
	}

	if got := aggregate.TotalForMonth(l.Expenses(), "2024-03"); got != 42.5 {
		t.Errorf("TotalForMonth = %v, want 42.5", got)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	e, err := l.Add(ctx, ledger.Input{
		Amount:   "10",
		Date:     expense.MustParseDate("2024-01-01"),
		Category: expense.CategoryBills,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !l.Remove(ctx, e.ID) {
		t.Fatal("Remove reported the record absent")
	}

	if got := len(l.Expenses()); got != 0 {
		t.Errorf("collection has %d records after round trip, want 0", got)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input ledger.Input
		want  error
	}{
		{
			name:  "missing amount",
			input: ledger.Input{Date: expense.MustParseDate("2024-01-01"), Category: expense.CategoryFood},
			want:  expense.ErrInvalidAmount,
		},
		{
			name:  "non-numeric amount",
			input: ledger.Input{Amount: "abc", Date: expense.MustParseDate("2024-01-01"), Category: expense.CategoryFood},
			want:  expense.ErrInvalidAmount,
		},
		{
			name:  "zero amount",
			input: ledger.Input{Amount: "0", Date: expense.MustParseDate("2024-01-01"), Category: expense.CategoryFood},
			want:  expense.ErrInvalidAmount,
		},
		{
			name:  "missing date",
			input: ledger.Input{Amount: "10", Category: expense.CategoryFood},
			want:  ledger.ErrMissingDate,
		},
		{
			name:  "unknown category",
			input: ledger.Input{Amount: "10", Date: expense.MustParseDate("2024-01-01"), Category: "Groceries"},
			want:  expense.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Add(ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Add error = %v, want %v", err, tt.want)
			}
		})
	}

	// rejected candidates never touch the collection
	if got := len(l.Expenses()); got != 0 {
		t.Errorf("collection has %d records after rejections, want 0", got)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	if l.Remove(ctx, 999) {
		t.Error("Remove of absent id reported success")
	}
}

func TestExpensesDisplayOrder(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	dates := []string{"2024-03-01", "2024-03-10", "2024-03-05", "2024-03-10"}
	for _, d := range dates {
		_, err := l.Add(ctx, ledger.Input{
			Amount:   "1",
			Date:     expense.MustParseDate(d),
			Category: expense.CategoryOther,
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	expenses := l.Expenses()

	// date descending, newest record first for same-day ties
	wantDates := []string{"2024-03-10", "2024-03-10", "2024-03-05", "2024-03-01"}
	for i, want := range wantDates {
		if got := expenses[i].Date.String(); got != want {
			t.Errorf("expenses[%d].Date = %v, want %v", i, got, want)
		}
	}
	if expenses[0].ID < expenses[1].ID {
		t.Error("same-day tie should order by id descending")
	}
}

func TestIDsAreUniqueAndMonotonic(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	var last int64
	for i := 0; i < 5; i++ {
		e, err := l.Add(ctx, ledger.Input{
			Amount:   "1",
			Date:     expense.MustParseDate("2024-01-01"),
			Category: expense.CategoryFood,
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		if e.ID <= last {
			t.Fatalf("id %d not greater than previous %d", e.ID, last)
		}
		seen[e.ID] = true
		last = e.ID
	}
}

func TestIDCounterSurvivesReload(t *testing.T) {
	l, path := testutil.SetupTestLedger(t)
	ctx := context.Background()

	e1, err := l.Add(ctx, ledger.Input{
		Amount:   "5",
		Date:     expense.MustParseDate("2024-01-01"),
		Category: expense.CategoryFood,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// reload from the same file: the counter must continue past e1
	reloaded, err := ledger.New(ctx, jsonfile.New(path, testutil.TestLogger(t)), testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	e2, err := reloaded.Add(ctx, ledger.Input{
		Amount:   "5",
		Date:     expense.MustParseDate("2024-01-02"),
		Category: expense.CategoryFood,
	})
	if err != nil {
		t.Fatalf("Add after reload failed: %v", err)
	}

	if e2.ID <= e1.ID {
		t.Errorf("id after reload = %d, want > %d", e2.ID, e1.ID)
	}
}

func TestMutationsPersist(t *testing.T) {
	l, path := testutil.SetupTestLedger(t)
	ctx := context.Background()

	if _, err := l.Add(ctx, ledger.Input{
		Amount:   "42.5",
		Date:     expense.MustParseDate("2024-03-15"),
		Category: expense.CategoryFood,
		Note:     "Lunch",
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := l.SetCurrency(ctx, "€"); err != nil {
		t.Fatalf("SetCurrency failed: %v", err)
	}
	l.SetBudget(ctx, "100")
	if err := l.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	reloaded, err := ledger.New(ctx, jsonfile.New(path, testutil.TestLogger(t)), testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	expenses := reloaded.Expenses()
	if len(expenses) != 1 {
		t.Fatalf("reloaded collection has %d records, want 1", len(expenses))
	}
	if expenses[0].Note != "Lunch" || expenses[0].Amount != 42.5 {
		t.Errorf("reloaded expense = %+v", expenses[0])
	}

	prefs := reloaded.Preferences()
	if prefs.Currency != "€" {
		t.Errorf("Currency = %v, want €", prefs.Currency)
	}
	if prefs.Budget != 100 {
		t.Errorf("Budget = %v, want 100", prefs.Budget)
	}
	if prefs.Theme != expense.ThemeDark {
		t.Errorf("Theme = %v, want dark", prefs.Theme)
	}
}

func TestPreferenceValidation(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)
	ctx := context.Background()

	if err := l.SetCurrency(ctx, "kr"); !errors.Is(err, expense.ErrUnknownCurrency) {
		t.Errorf("SetCurrency error = %v, want ErrUnknownCurrency", err)
	}
	if err := l.SetTheme(ctx, "solarized"); !errors.Is(err, expense.ErrUnknownTheme) {
		t.Errorf("SetTheme error = %v, want ErrUnknownTheme", err)
	}

	// tolerant coercion: junk budget means no budget
	l.SetBudget(ctx, "not a number")
	if got := l.Preferences().Budget; got != 0 {
		t.Errorf("Budget = %v, want 0", got)
	}
}

// failingStore always errors on Save to prove mutations survive
// storage trouble.
type failingStore struct{}

func (failingStore) Load(context.Context) (storage.Snapshot, error) {
	return storage.DefaultSnapshot(), nil
}

func (failingStore) Save(context.Context, storage.Snapshot) error {
	return errors.New("disk full")
}

func (failingStore) Close() error { return nil }

func TestSaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	l, err := ledger.New(ctx, failingStore{}, testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e, err := l.Add(ctx, ledger.Input{
		Amount:   "10",
		Date:     expense.MustParseDate("2024-01-01"),
		Category: expense.CategoryFood,
	})
	if err != nil {
		t.Fatalf("Add failed despite swallowed save error: %v", err)
	}
	if len(l.Expenses()) != 1 || l.Expenses()[0].ID != e.ID {
		t.Error("record missing from in-memory collection after failed save")
	}
}
