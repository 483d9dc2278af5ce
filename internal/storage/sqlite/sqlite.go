// Package sqlite is the SQLite Store backend. The expense collection
// lives in an expenses table and the three preferences in a key/value
// table; Save rewrites both inside a single transaction, matching the
// overwrite-per-change contract of the store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/storage"
)

const (
	prefCurrency = "currency"
	prefBudget   = "budget"
	prefTheme    = "theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY,
	amount REAL NOT NULL,
	date TEXT NOT NULL,
	category TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type Store struct {
	db     *sql.DB
	logger *logger.Logger
}

func New(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// single synchronous writer; also keeps :memory: databases on one
	// connection instead of one per pooled conn
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, logger: log}, nil
}

// Load reads the full snapshot. Query failures and malformed rows are
// non-fatal: they degrade to the default snapshot or skip the row.
func (s *Store) Load(ctx context.Context) (storage.Snapshot, error) {
	snap := storage.DefaultSnapshot()

	rows, err := s.db.QueryContext(ctx, "SELECT id, amount, date, category, note FROM expenses ORDER BY id")
	if err != nil {
		s.logger.Warn("unable to read expenses, starting from defaults", "error", err.Error())
		return snap, nil
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       int64
			amount   float64
			date     string
			category string
			note     string
		)
		if err := rows.Scan(&id, &amount, &date, &category, &note); err != nil {
			s.logger.Warn("skipping unreadable expense row", "error", err.Error())
			continue
		}

		parsedDate, err := expense.ParseDate(date)
		if err != nil {
			s.logger.Warn("skipping expense with malformed date", "id", id, "date", date)
			continue
		}

		parsedCategory, err := expense.ParseCategory(category)
		if err != nil {
			parsedCategory = expense.CategoryOther
		}

		snap.Expenses = append(snap.Expenses, expense.Expense{
			ID:       id,
			Amount:   amount,
			Date:     parsedDate,
			Category: parsedCategory,
			Note:     note,
		})
	}

	if err := rows.Err(); err != nil {
		s.logger.Warn("unable to read expenses, starting from defaults", "error", err.Error())
		return storage.DefaultSnapshot(), nil
	}

	snap.Preferences = s.loadPreferences(ctx)

	return snap, nil
}

func (s *Store) loadPreferences(ctx context.Context) expense.Preferences {
	prefs := expense.DefaultPreferences()

	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM preferences")
	if err != nil {
		s.logger.Warn("unable to read preferences, using defaults", "error", err.Error())
		return prefs
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}

		switch key {
		case prefCurrency:
			if expense.ValidCurrency(value) {
				prefs.Currency = value
			}
		case prefBudget:
			prefs.Budget = expense.ParseBudget(value)
		case prefTheme:
			if theme, err := expense.ParseTheme(value); err == nil {
				prefs.Theme = theme
			}
		}
	}

	return prefs
}

// Save rewrites the persisted state in one transaction.
func (s *Store) Save(ctx context.Context, snap storage.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return rollback(tx, err)
	}

	for _, e := range snap.Expenses {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expenses (id, amount, date, category, note) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Amount, e.Date.String(), string(e.Category), e.Note)
		if err != nil {
			return rollback(tx, fmt.Errorf("failed to insert expense %d: %w", e.ID, err))
		}
	}

	budget := ""
	if snap.Preferences.Budget > 0 {
		budget = strconv.FormatFloat(snap.Preferences.Budget, 'f', -1, 64)
	}

	prefs := map[string]string{
		prefCurrency: snap.Preferences.Currency,
		prefBudget:   budget,
		prefTheme:    string(snap.Preferences.Theme),
	}
	for key, value := range prefs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		if err != nil {
			return rollback(tx, fmt.Errorf("failed to save preference %s: %w", key, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}

	return nil
}

func rollback(tx *sql.Tx, err error) error {
	if rErr := tx.Rollback(); rErr != nil {
		return rErr
	}
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
