package list

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spendlog/spendlog/internal/aggregate"
	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/util"
)

type listCommand struct {
	month string
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "Lists expenses, newest first"
}

func (c *listCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.month, "month", "", "only show expenses for this month (YYYY-MM)")
}

func (c *listCommand) Run(_ context.Context, l *ledger.Ledger, log *logger.Logger) error {
	if c.month != "" {
		if _, _, err := util.ParseMonthKey(c.month); err != nil {
			return err
		}
	}

	expenses := l.Expenses()
	currency := l.Preferences().Currency

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, util.ColorOutput("ID\tDATE\tCATEGORY\tAMOUNT\tNOTE", "bold"))

	shown := 0
	var total float64
	for _, e := range expenses {
		if c.month != "" && e.Date.MonthKey() != c.month {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s%s\t%s\n",
			e.ID, e.Date, e.Category, currency, expense.FormatAmount(e.Amount), e.Note)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if shown == 0 {
		fmt.Println("No expenses recorded")
		return nil
	}

	if c.month != "" {
		total = aggregate.TotalForMonth(expenses, c.month)
		fmt.Printf("\n%s total: %s%s\n", util.MonthTitle(c.month), currency, expense.FormatAmount(total))
	} else {
		total = aggregate.TotalAll(expenses)
		fmt.Printf("\nTotal: %s%s\n", currency, expense.FormatAmount(total))
	}

	return nil
}
