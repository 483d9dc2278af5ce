package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spendlog/spendlog/internal/expense"
)

const sheetName = "Expenses"

// XLSX exports expenses as a spreadsheet with a header row and one row
// per expense. Amounts are written as numeric cells so spreadsheet
// formulas work on them directly.
func XLSX(writer io.Writer, expenses []expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, e := range expenses {
		row := i + 2 // row 1 is the header
		values := []interface{}{
			e.Date.String(),
			string(e.Category),
			e.Note,
			e.Amount,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return nil
}
