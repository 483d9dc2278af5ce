// Package jsonfile is the default Store backend: the whole ledger in a
// single JSON document on disk, rewritten atomically on every save.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/storage"
)

// document is the on-disk layout: four independent entries. Each entry
// decodes on its own, so one malformed value falls back to its default
// without discarding the others.
type document struct {
	Expenses json.RawMessage `json:"expenses"`
	Currency json.RawMessage `json:"currency"`
	Budget   json.RawMessage `json:"budget"`
	Theme    json.RawMessage `json:"theme"`
}

type Store struct {
	path   string
	logger *logger.Logger
}

func New(path string, log *logger.Logger) *Store {
	return &Store{
		path:   path,
		logger: log,
	}
}

// Load reads the ledger back. Any failure is non-fatal: a missing file,
// unreadable file, or malformed payload degrades to defaults.
func (s *Store) Load(_ context.Context) (storage.Snapshot, error) {
	snap := storage.DefaultSnapshot()

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("unable to read ledger file, starting from defaults", "path", s.path, "error", err.Error())
		}
		return snap, nil
	}

	var doc document
	if err := json.Unmarshal(bytes, &doc); err != nil {
		s.logger.Warn("malformed ledger file, starting from defaults", "path", s.path, "error", err.Error())
		return snap, nil
	}

	if len(doc.Expenses) > 0 {
		var expenses []expense.Expense
		if err := json.Unmarshal(doc.Expenses, &expenses); err != nil {
			s.logger.Warn("malformed expense collection, starting empty", "error", err.Error())
		} else {
			snap.Expenses = expenses
		}
	}

	if len(doc.Currency) > 0 {
		var currency string
		if err := json.Unmarshal(doc.Currency, &currency); err == nil && expense.ValidCurrency(currency) {
			snap.Preferences.Currency = currency
		}
	}

	snap.Preferences.Budget = decodeBudget(doc.Budget)

	if len(doc.Theme) > 0 {
		var theme string
		if err := json.Unmarshal(doc.Theme, &theme); err == nil {
			if parsed, err := expense.ParseTheme(theme); err == nil {
				snap.Preferences.Theme = parsed
			}
		}
	}

	return snap, nil
}

// decodeBudget accepts the canonical string encoding as well as a bare
// number, coercing anything else to "no budget".
func decodeBudget(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return expense.ParseBudget(str)
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return expense.ParseBudget(strconv.FormatFloat(num, 'f', -1, 64))
	}

	return 0
}

// Save rewrites the ledger file. The write goes through a temp file in
// the same directory followed by a rename, so a crash mid-write never
// leaves a truncated ledger behind.
func (s *Store) Save(_ context.Context, snap storage.Snapshot) error {
	expenses, err := json.Marshal(snap.Expenses)
	if err != nil {
		return fmt.Errorf("unable to encode expenses: %w", err)
	}
	currency, err := json.Marshal(snap.Preferences.Currency)
	if err != nil {
		return fmt.Errorf("unable to encode currency: %w", err)
	}

	budgetStr := ""
	if snap.Preferences.Budget > 0 {
		budgetStr = strconv.FormatFloat(snap.Preferences.Budget, 'f', -1, 64)
	}
	budget, err := json.Marshal(budgetStr)
	if err != nil {
		return fmt.Errorf("unable to encode budget: %w", err)
	}

	theme, err := json.Marshal(string(snap.Preferences.Theme))
	if err != nil {
		return fmt.Errorf("unable to encode theme: %w", err)
	}

	doc := document{
		Expenses: expenses,
		Currency: currency,
		Budget:   budget,
		Theme:    theme,
	}

	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".spendlog-*.json")
	if err != nil {
		return fmt.Errorf("unable to create temp ledger file: %w", err)
	}

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("unable to write ledger file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("unable to replace ledger file: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}
