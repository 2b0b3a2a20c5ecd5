package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/breadsim/pkg/infrastructure/config"
	"github.com/vsinha/breadsim/pkg/infrastructure/logging"
	"github.com/vsinha/breadsim/pkg/interfaces/cli/commands"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the composition root. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("breadsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Run 'breadsim -help' for usage.")
	}

	var (
		scenarioFile = flags.String(
			"scenario",
			"",
			"Path to YAML scenario file",
		)
		deliveriesFile = flags.String("deliveries", "", "Path to deliveries CSV file")
		format         = flags.String("format", "text", "Output format: text, json, yaml, csv")
		verbose        = flags.Bool("verbose", false, "Include the daily ledger")
		showEvents     = flags.Bool("events", false, "Append the simulation event log")
		help           = flags.Bool("help", false, "Show help message")
	)

	if err := flags.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			return 1
		}
		*help = true
	}

	cfg := config.Load()
	logger := logging.Setup(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
	}, stderr)
	if !cfg.DotEnvLoaded {
		logger.Debug("no .env file found (using environment variables)")
	}

	runID := logging.NewRunID()

	cmd := commands.NewSimulateCommand(commands.Config{
		Args:           flags.Args(),
		ScenarioFile:   *scenarioFile,
		DeliveriesFile: *deliveriesFile,
		Format:         *format,
		Verbose:        *verbose,
		Events:         *showEvents,
		Help:           *help,
		RunID:          runID,
		Stdout:         stdout,
		Logger:         logging.RunLogger(logger, runID),
	})

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
