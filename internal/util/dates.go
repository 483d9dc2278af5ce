package util

import (
	"fmt"
	"time"

	"github.com/spendlog/spendlog/internal/expense"
)

// CurrentMonthKey returns the YYYY-MM key of the current month.
func CurrentMonthKey() string {
	return expense.Today().MonthKey()
}

// ParseMonthKey validates a YYYY-MM key and splits it into its parts.
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// MonthTitle renders a month key for humans, e.g. "March 2024". An
// invalid key is returned unchanged.
func MonthTitle(key string) string {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", month.String(), year)
}
