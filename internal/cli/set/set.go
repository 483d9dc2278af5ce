package set

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

type setCommand struct {
	currency string
	budget   string
	theme    string
}

func NewCommand() cli.Command {
	return &setCommand{}
}

func (c *setCommand) Description() string {
	return "Updates preferences: currency symbol, monthly budget, theme"
}

func (c *setCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.currency, "currency", "", "currency symbol: "+strings.Join(expense.CurrencySymbols(), " "))
	fset.StringVar(&c.budget, "budget", "", "monthly budget amount, empty or 0 to unset")
	fset.StringVar(&c.theme, "theme", "", "theme: light, dark, or system")
}

func (c *setCommand) Run(ctx context.Context, l *ledger.Ledger, log *logger.Logger) error {
	if c.currency == "" && c.budget == "" && c.theme == "" {
		return fmt.Errorf("nothing to set, use -currency, -budget, or -theme")
	}

	if c.currency != "" {
		if err := l.SetCurrency(ctx, c.currency); err != nil {
			return fmt.Errorf("%w, valid symbols: %s", err, strings.Join(expense.CurrencySymbols(), " "))
		}
		fmt.Printf("Currency set to %s\n", c.currency)
	}

	if c.budget != "" {
		l.SetBudget(ctx, c.budget)
		budget := l.Preferences().Budget
		if budget > 0 {
			fmt.Printf("Monthly budget set to %s%s\n", l.Preferences().Currency, expense.FormatAmount(budget))
		} else {
			fmt.Println("Monthly budget unset")
		}
	}

	if c.theme != "" {
		if err := l.SetTheme(ctx, c.theme); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", l.Preferences().Theme)
	}

	return nil
}
