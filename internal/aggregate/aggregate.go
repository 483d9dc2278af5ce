// Package aggregate derives read-only views from the expense collection.
// Every function is pure: no side effects, deterministic for a given
// input, safe to re-run after every mutation.
package aggregate

import (
	"math"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/spendlog/spendlog/internal/expense"
)

// Point is a single entry of an ordered series.
type Point struct {
	Key   string
	Total float64
}

// Series is a list of grouping keys with their summed amounts, ordered
// by key ascending. ISO date keys sort lexicographically, so ascending
// key order is chronological order.
type Series []Point

// amount guards against non-numeric values sneaking into the
// collection: NaN and infinities count as zero, mirroring the tolerant
// coercion applied at input time.
func amount(e expense.Expense) float64 {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return 0
	}
	return e.Amount
}

// TotalForDate sums amounts of expenses recorded on exactly the given day.
func TotalForDate(expenses []expense.Expense, date expense.Date) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.Equal(date) {
			total += amount(e)
		}
	}
	return total
}

// TotalForMonth sums amounts of expenses whose month key (YYYY-MM)
// matches monthKey.
func TotalForMonth(expenses []expense.Expense, monthKey string) float64 {
	var total float64
	for _, e := range expenses {
		if e.Date.MonthKey() == monthKey {
			total += amount(e)
		}
	}
	return total
}

// TotalAll sums amounts over the entire collection.
func TotalAll(expenses []expense.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += amount(e)
	}
	return total
}

// TotalsByCategoryForMonth maps every fixed category to its summed
// amount within the month. Categories with no matching expenses are
// present with a zero total, never absent.
func TotalsByCategoryForMonth(expenses []expense.Expense, monthKey string) map[expense.Category]float64 {
	totals := make(map[expense.Category]float64, len(expense.Categories()))
	for _, c := range expense.Categories() {
		totals[c] = 0
	}
	for _, e := range expenses {
		if e.Date.MonthKey() != monthKey {
			continue
		}
		if _, ok := totals[e.Category]; !ok {
			// unknown category in persisted data folds into Other
			totals[expense.CategoryOther] += amount(e)
			continue
		}
		totals[e.Category] += amount(e)
	}
	return totals
}

// DailySeriesForMonth groups the month's expenses by day. Only days
// with at least one expense appear.
func DailySeriesForMonth(expenses []expense.Expense, monthKey string) Series {
	return series(expenses, func(e expense.Expense) (string, bool) {
		return e.Date.String(), e.Date.MonthKey() == monthKey
	})
}

// MonthlySeriesAllTime groups the whole collection by month key.
func MonthlySeriesAllTime(expenses []expense.Expense) Series {
	return series(expenses, func(e expense.Expense) (string, bool) {
		return e.Date.MonthKey(), true
	})
}

// YearlySeriesAllTime groups the whole collection by year key.
func YearlySeriesAllTime(expenses []expense.Expense) Series {
	return series(expenses, func(e expense.Expense) (string, bool) {
		return e.Date.YearKey(), true
	})
}

func series(expenses []expense.Expense, group func(expense.Expense) (string, bool)) Series {
	totals := make(map[string]float64)
	for _, e := range expenses {
		key, ok := group(e)
		if !ok {
			continue
		}
		totals[key] += amount(e)
	}

	keys := maps.Keys(totals)
	sort.Strings(keys)

	s := make(Series, 0, len(keys))
	for _, key := range keys {
		s = append(s, Point{Key: key, Total: totals[key]})
	}
	return s
}

// BudgetExceeded reports whether monthTotal strictly exceeds the budget
// limit. A zero, negative, NaN, or infinite limit means no budget is
// set and always yields false.
func BudgetExceeded(monthTotal, limit float64) bool {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return false
	}
	return monthTotal > limit
}
