package export

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spendlog/spendlog/internal/aggregate"
	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/export"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/util"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

type exportCommand struct {
	format string
	month  string
	output string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports expenses to csv, xlsx, or pdf"
}

func (c *exportCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.format, "format", formatCSV, "export format: csv, xlsx, or pdf")
	fset.StringVar(&c.month, "month", "", "only export expenses for this month (YYYY-MM)")
	fset.StringVar(&c.output, "o", "", "output file (default expenses.<format>)")
}

func (c *exportCommand) Run(_ context.Context, l *ledger.Ledger, log *logger.Logger) error {
	switch c.format {
	case formatCSV, formatXLSX, formatPDF:
	default:
		return fmt.Errorf("unsupported export format %q", c.format)
	}

	if c.month != "" {
		if _, _, err := util.ParseMonthKey(c.month); err != nil {
			return err
		}
	}

	expenses := l.Expenses()
	if c.month != "" {
		filtered := make([]expense.Expense, 0, len(expenses))
		for _, e := range expenses {
			if e.Date.MonthKey() == c.month {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	// exporting nothing is a no-op: no file gets created
	if len(expenses) == 0 {
		log.Info("no expenses to export")
		return nil
	}

	output := c.output
	if output == "" {
		output = "expenses." + c.format
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", output, err)
	}
	defer file.Close()

	switch c.format {
	case formatCSV:
		err = export.CSV(file, expenses)
	case formatXLSX:
		err = export.XLSX(file, expenses)
	case formatPDF:
		title := "Expense report"
		if c.month != "" {
			title = "Expense report for " + util.MonthTitle(c.month)
		}
		err = export.PDF(file, expenses, export.Summary{
			Title:    title,
			Currency: l.Preferences().Currency,
			Total:    aggregate.TotalAll(expenses),
			Count:    len(expenses),
		})
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d expenses to %s\n", len(expenses), output)
	return nil
}
