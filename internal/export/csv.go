// Package export renders the expense collection into the supported
// interchange formats. Exporters write to an io.Writer and expect the
// collection in display order; callers decide what to do with an empty
// collection (the CLI skips creating a file).
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spendlog/spendlog/internal/expense"
)

// Header is the column layout shared by the CSV and XLSX exports.
var Header = []string{"Date", "Category", "Note", "Amount"}

// CSV exports expenses as delimited text. encoding/csv takes care of
// quoting notes that contain the delimiter, quotes, or newlines.
func CSV(writer io.Writer, expenses []expense.Expense) error {
	w := csv.NewWriter(writer)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, Header)

	for _, e := range expenses {
		records = append(records, []string{
			e.Date.String(),
			string(e.Category),
			e.Note,
			expense.FormatAmount(e.Amount),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
