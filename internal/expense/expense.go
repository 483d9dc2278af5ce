package expense

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryRent          Category = "Rent"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists every category in display order. The first entry is
// the default selection for new expenses.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryShopping,
		CategoryRent,
		CategoryBills,
		CategoryEntertainment,
		CategoryOther,
	}
}

var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Expense is a single recorded expense. Records are immutable after
// creation: the only lifecycle transitions are add and remove.
type Expense struct {
	ID       int64    `json:"id"`
	Amount   float64  `json:"amount"`
	Date     Date     `json:"date"`
	Category Category `json:"category"`
	Note     string   `json:"note,omitempty"`
}

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var ErrUnknownTheme = errors.New("unknown theme")

func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	case ThemeSystem:
		return ThemeSystem, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// DefaultCurrency is the symbol used when no preference has been saved.
const DefaultCurrency = "£"

// CurrencySymbols is the fixed set of selectable currency symbols.
func CurrencySymbols() []string {
	return []string{"£", "$", "€", "₹", "¥"}
}

var ErrUnknownCurrency = errors.New("unknown currency symbol")

func ValidCurrency(symbol string) bool {
	for _, s := range CurrencySymbols() {
		if s == symbol {
			return true
		}
	}
	return false
}

// Preferences are the three user-scoped scalars persisted alongside the
// expense collection. A Budget of zero or less means no budget is set.
type Preferences struct {
	Currency string  `json:"currency"`
	Budget   float64 `json:"budget"`
	Theme    Theme   `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Currency: DefaultCurrency,
		Budget:   0,
		Theme:    ThemeSystem,
	}
}

var ErrInvalidAmount = errors.New("amount must be a positive number")

// ParseAmount coerces user input into a positive amount. Comma decimal
// separators are accepted; anything non-numeric or not strictly positive
// is rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseBudget coerces a persisted or user-supplied budget value. The
// budget is optional: empty, non-numeric, or negative input all mean
// "no budget" and map to zero.
func ParseBudget(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatAmount renders an amount with exactly two fraction digits for
// display. Aggregation keeps full float precision; only presentation
// rounds.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
