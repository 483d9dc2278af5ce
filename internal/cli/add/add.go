package add

import (
	"context"
	"flag"
	"fmt"

	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

type addCommand struct {
	amount   string
	date     string
	category string
	note     string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Records a new expense"
}

func (c *addCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.amount, "amount", "", "expense amount, e.g. 12.50")
	fset.StringVar(&c.date, "date", "", "expense date as YYYY-MM-DD (default today)")
	fset.StringVar(&c.category, "category", "", "expense category (default Food)")
	fset.StringVar(&c.note, "note", "", "optional note")
}

func (c *addCommand) Run(ctx context.Context, l *ledger.Ledger, log *logger.Logger) error {
	form := ledger.NewForm()
	form.Amount = c.amount
	form.Note = c.note

	if c.date != "" {
		date, err := expense.ParseDate(c.date)
		if err != nil {
			return err
		}
		form.Date = date
	}

	if c.category != "" {
		category, err := expense.ParseCategory(c.category)
		if err != nil {
			return err
		}
		form.Category = category
	}

	e, err := l.Add(ctx, form.Input())
	if err != nil {
		return fmt.Errorf("expense rejected: %w", err)
	}
	form.Reset()

	currency := l.Preferences().Currency
	fmt.Printf("Added expense %d: %s%s %s on %s\n",
		e.ID, currency, expense.FormatAmount(e.Amount), e.Category, e.Date)

	return nil
}
