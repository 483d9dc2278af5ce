// Package report assembles the monthly view consumed by the CLI: month
// total, category breakdown, daily series, and budget status. Like the
// aggregation it builds on, Generate is pure.
package report

import (
	"sort"

	"github.com/spendlog/spendlog/internal/aggregate"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/util"
)

type CategoryBreakdown struct {
	Category expense.Category
	Total    float64
	// Share is the category's percentage of the month total, 0 when
	// the month has no spending.
	Share float64
}

type Report struct {
	MonthKey       string
	Title          string
	Currency       string
	MonthTotal     float64
	AllTimeTotal   float64
	Budget         float64
	BudgetExceeded bool
	Categories     []CategoryBreakdown
	Daily          aggregate.Series
}

const percentageOfTotal = 100

func Generate(expenses []expense.Expense, prefs expense.Preferences, monthKey string) Report {
	monthTotal := aggregate.TotalForMonth(expenses, monthKey)

	byCategory := aggregate.TotalsByCategoryForMonth(expenses, monthKey)
	categories := make([]CategoryBreakdown, 0, len(byCategory))
	for category, total := range byCategory {
		breakdown := CategoryBreakdown{
			Category: category,
			Total:    total,
		}
		if monthTotal > 0 {
			breakdown.Share = total / monthTotal * percentageOfTotal
		}
		categories = append(categories, breakdown)
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total != categories[j].Total {
			return categories[i].Total > categories[j].Total
		}
		return categories[i].Category < categories[j].Category
	})

	return Report{
		MonthKey:       monthKey,
		Title:          util.MonthTitle(monthKey),
		Currency:       prefs.Currency,
		MonthTotal:     monthTotal,
		AllTimeTotal:   aggregate.TotalAll(expenses),
		Budget:         prefs.Budget,
		BudgetExceeded: aggregate.BudgetExceeded(monthTotal, prefs.Budget),
		Categories:     categories,
		Daily:          aggregate.DailySeriesForMonth(expenses, monthKey),
	}
}
