package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/storage/jsonfile"
	"github.com/spendlog/spendlog/internal/storage/sqlite"
)

// SetupTestLedger returns a ledger backed by a jsonfile store in a
// temp directory, plus the data file path for reload assertions.
func SetupTestLedger(t *testing.T) (*ledger.Ledger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spendlog.json")
	store := jsonfile.New(path, TestLogger(t))

	l, err := ledger.New(context.Background(), store, TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to initialize test ledger: %v", err)
	}

	return l, path
}

// SetupSQLiteStore returns an in-memory sqlite store.
func SetupSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(":memory:", TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to open test sqlite store: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test sqlite store: %v", err)
		}
	})

	return store
}
