package ledger

import "github.com/spendlog/spendlog/internal/expense"

// Form is the transient input state for a new expense, modeled
// explicitly instead of living as ambient globals. After a successful
// add the form resets: amount and note cleared, date back to today,
// category back to the first in the fixed list.
type Form struct {
	Amount   string
	Date     expense.Date
	Category expense.Category
	Note     string
}

func NewForm() Form {
	f := Form{}
	f.Reset()
	return f
}

func (f *Form) Reset() {
	f.Amount = ""
	f.Note = ""
	f.Date = expense.Today()
	f.Category = expense.Categories()[0]
}

func (f Form) Input() Input {
	return Input{
		Amount:   f.Amount,
		Date:     f.Date,
		Category: f.Category,
		Note:     f.Note,
	}
}
