package cli

import (
	"context"
	"flag"
	"fmt"
	"testing"

	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
)

// mockCommand implements the Command interface for testing.
type mockCommand struct {
	description string
	runError    error
}

func (c mockCommand) SetFlags(fset *flag.FlagSet) {
	fset.String("test", "", "test flag")
}

func (c mockCommand) Description() string {
	return c.description
}

func (c mockCommand) Run(_ context.Context, _ *ledger.Ledger, _ *logger.Logger) error {
	return c.runError
}

func TestCommandInterface(t *testing.T) {
	cmd := mockCommand{
		description: "Test command",
		runError:    nil,
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if fs.Lookup("test") == nil {
		t.Error("SetFlags() did not register the test flag")
	}

	desc := cmd.Description()
	if desc != "Test command" {
		t.Errorf("Description() = %v, want %v", desc, "Test command")
	}

	err := cmd.Run(context.Background(), nil, nil)
	if err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}

	cmdWithError := mockCommand{
		description: "Error command",
		runError:    fmt.Errorf("test error"),
	}

	err = cmdWithError.Run(context.Background(), nil, nil)
	if err == nil {
		t.Error("Run() expected error, got nil")
	}
}
