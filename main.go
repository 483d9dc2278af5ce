package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spendlog/spendlog/internal/cli"
	"github.com/spendlog/spendlog/internal/cli/add"
	deleteCmd "github.com/spendlog/spendlog/internal/cli/delete"
	exportCmd "github.com/spendlog/spendlog/internal/cli/export"
	"github.com/spendlog/spendlog/internal/cli/list"
	"github.com/spendlog/spendlog/internal/cli/report"
	"github.com/spendlog/spendlog/internal/cli/set"
	"github.com/spendlog/spendlog/internal/config"
	"github.com/spendlog/spendlog/internal/ledger"
	"github.com/spendlog/spendlog/internal/logger"
	"github.com/spendlog/spendlog/internal/storage"
	"github.com/spendlog/spendlog/internal/storage/jsonfile"
	"github.com/spendlog/spendlog/internal/storage/sqlite"
)

var configPath string

var subcommands = map[string]cli.Command{
	"add":    add.NewCommand(),
	"delete": deleteCmd.NewCommand(),
	"list":   list.NewCommand(),
	"report": report.NewCommand(),
	"export": exportCmd.NewCommand(),
	"set":    set.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "spendlog.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse flags: %s\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	store, err := openStore(conf, log)
	if err != nil {
		log.Fatal("unable to open storage", "backend", conf.Storage.Backend, "error", err.Error())
	}
	defer store.Close()

	ctx := context.Background()

	l, err := ledger.New(ctx, store, log)
	if err != nil {
		log.Fatal("unable to initialize ledger", "error", err.Error())
	}

	if err := command.Run(ctx, l, log); err != nil {
		log.Fatal("command failed", "command", commandName, "error", err.Error())
	}
}

func openStore(conf *config.Config, log *logger.Logger) (storage.Store, error) {
	switch conf.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.New(conf.Storage.Path, log)
	case config.BackendJSONFile:
		return jsonfile.New(conf.Storage.Path, log), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}

func printHelp() {
	printUsage()

	for c, cLogic := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", c, cLogic.Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: spendlog <subcommand> [flags]\n\n")
}
