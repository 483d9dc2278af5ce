package delete

import (
	"context"
	"flag"
	"fmt"

	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

type deleteCommand struct {
	id int64
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Deletes an expense by its id"
}

func (c *deleteCommand) SetFlags(fset *flag.FlagSet) {
	fset.Int64Var(&c.id, "id", 0, "id of the expense to delete")
}

func (c *deleteCommand) Run(ctx context.Context, l *ledger.Ledger, log *logger.Logger) error {
	if c.id == 0 {
		return fmt.Errorf("an expense id is required")
	}

	if l.Remove(ctx, c.id) {
		fmt.Printf("Deleted expense %d\n", c.id)
	} else {
		// absent ids are a no-op by contract, just tell the user
		fmt.Printf("No expense with id %d\n", c.id)
	}

	return nil
}
