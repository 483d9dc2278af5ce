package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/spendlog/spendlog/internal/expense"
)

// Summary is the report header rendered above the expense rows.
type Summary struct {
	Title    string
	Currency string
	Total    float64
	Count    int
}

const (
	colDate     = 28.0
	colCategory = 34.0
	colNote     = 98.0
	colAmount   = 30.0
	rowHeight   = 8.0
)

// PDF exports a paginated report: summary totals followed by one row
// per expense. Page breaks are handled by fpdf's auto page break.
func PDF(writer io.Writer, expenses []expense.Expense, summary Summary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(summary.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	totals := fmt.Sprintf("Total: %s%s across %d expenses",
		summary.Currency, expense.FormatAmount(summary.Total), summary.Count)
	pdf.Cell(0, rowHeight, tr(totals))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colDate, rowHeight, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colCategory, rowHeight, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colNote, rowHeight, "Note", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range expenses {
		pdf.CellFormat(colDate, rowHeight, e.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colCategory, rowHeight, string(e.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colNote, rowHeight, tr(e.Note), "1", 0, "L", false, 0, "")
		amount := summary.Currency + expense.FormatAmount(e.Amount)
		pdf.CellFormat(colAmount, rowHeight, tr(amount), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}

	return nil
}
