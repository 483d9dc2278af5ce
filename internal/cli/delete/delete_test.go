package delete

import (
	"context"
	"flag"
	"strconv"
	"testing"

	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/testutil"
)

func runDelete(t *testing.T, l *ledger.Ledger, args []string) error {
	t.Helper()

	cmd := NewCommand()
	fset := flag.NewFlagSet("delete", flag.ContinueOnError)
	cmd.SetFlags(fset)
	if err := fset.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	return cmd.Run(context.Background(), l, testutil.TestLogger(t))
}

func TestDeleteCommand(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)

	e, err := l.Add(context.Background(), ledger.Input{
		Amount:   "10",
		Date:     expense.MustParseDate("2024-01-01"),
		Category: expense.CategoryFood,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := runDelete(t, l, []string{"-id", strconv.FormatInt(e.ID, 10)}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := len(l.Expenses()); got != 0 {
		t.Errorf("collection has %d records after delete, want 0", got)
	}
}

func TestDeleteAbsentIsNotAnError(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)

	if err := runDelete(t, l, []string{"-id", "999"}); err != nil {
		t.Errorf("Run failed for absent id: %v", err)
	}
}

func TestDeleteRequiresID(t *testing.T) {
	l, _ := testutil.SetupTestLedger(t)

	if err := runDelete(t, l, nil); err == nil {
		t.Fatal("expected error when no id is given")
	}
}
