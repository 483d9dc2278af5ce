package report

import (
	"context"
	"embed"
	"flag"
	"io"
	"os"
	"path"
	"text/template"

	"github.com/spendlog/spendlog/internal/aggregate"
	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/expense"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
	internalReport "github.com/spendlog/spendlog/internal/report"
	"github.com/spendlog/spendlog/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	month string
	all   bool
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Displays the monthly expense report"
}

func (c *reportCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.month, "month", "", "month to report on as YYYY-MM (default current month)")
	fset.BoolVar(&c.all, "all", false, "also show the all-time monthly and yearly series")
}

type view struct {
	Report  internalReport.Report
	Monthly aggregate.Series
	Yearly  aggregate.Series
}

func (c *reportCommand) Run(_ context.Context, l *ledger.Ledger, log *logger.Logger) error {
	month := c.month
	if month == "" {
		month = util.CurrentMonthKey()
	}
	if _, _, err := util.ParseMonthKey(month); err != nil {
		return err
	}

	expenses := l.Expenses()

	v := view{
		Report: internalReport.Generate(expenses, l.Preferences(), month),
	}
	if c.all {
		v.Monthly = aggregate.MonthlySeriesAllTime(expenses)
		v.Yearly = aggregate.YearlySeriesAllTime(expenses)
	}

	return renderTemplate(os.Stdout, "report.tmpl", v)
}

var templateFuncs = template.FuncMap{
	"formatAmount": expense.FormatAmount,
	"colorOutput":  util.ColorOutput,
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))
	return t.Execute(out, value)
}
