package cli

import (
	"context"
	"flag"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, l *ledger.Ledger, log *logger.Logger) error
}
