package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/breadsim/pkg/application/services"
	"github.com/vsinha/breadsim/pkg/domain/entities"
	domainservices "github.com/vsinha/breadsim/pkg/domain/services"
	"github.com/vsinha/breadsim/pkg/infrastructure/events"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/yaml"
	"github.com/vsinha/breadsim/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	// Args are the positional arguments: NUM_DAYS and the delivery spec
	Args           []string
	ScenarioFile   string
	DeliveriesFile string
	Format         string
	Verbose        bool
	Events         bool
	Help           bool
	RunID          string
	Stdout         io.Writer
	// Logger is expected to already carry the run ID
	Logger         *slog.Logger
}

// SimulateCommand handles the main simulation logic
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Format == "" {
		config.Format = "text"
	}
	return &SimulateCommand{
		config: config,
	}
}

// Execute validates every input, runs the simulation and writes the report.
// Nothing is written to Stdout unless the whole run succeeds.
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if !output.ValidFormat(c.config.Format) {
		return fmt.Errorf("unsupported output format %q (expected one of %s)",
			c.config.Format, strings.Join(output.Formats, ", "))
	}

	numDays, deliveries, err := c.resolveInputs()
	if err != nil {
		return err
	}

	c.config.Logger.Debug("inputs resolved", "num_days", numDays, "deliveries", len(deliveries))

	deliveryRepo := memory.NewDeliveryRepository()
	if err := deliveryRepo.LoadDeliveries(deliveries); err != nil {
		return fmt.Errorf("failed to load deliveries into repository: %w", err)
	}

	var store *events.InMemoryEventStore
	var eventStore events.EventStore
	if c.config.Events {
		store = events.NewInMemoryEventStore()
		eventStore = store
	}

	simulation := services.NewSimulationService(memory.NewLedger, eventStore, c.config.Logger)
	result, err := simulation.Run(ctx, services.SimulationConfig{
		RunID:   c.config.RunID,
		NumDays: numDays,
	}, deliveryRepo)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	outputConfig := output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	}
	if store != nil {
		outputConfig.Events, err = store.ReadAllEvents(0)
		if err != nil {
			return fmt.Errorf("failed to read event log: %w", err)
		}
	}

	if err := output.Generate(c.config.Stdout, result, outputConfig); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// resolveInputs reads the horizon and deliveries from whichever source the
// configuration names
func (c *SimulateCommand) resolveInputs() (int, []*entities.DeliveryEvent, error) {
	args := c.config.Args

	switch {
	case c.config.ScenarioFile != "":
		if len(args) != 0 {
			return 0, nil, entities.NewArgumentCountError(0, len(args))
		}
		numDays, deliveries, err := yaml.NewLoader().LoadScenario(c.config.ScenarioFile)
		if err != nil {
			return 0, nil, fmt.Errorf("error loading scenario: %w", err)
		}
		return numDays, deliveries, nil

	case c.config.DeliveriesFile != "":
		if len(args) != 1 {
			return 0, nil, entities.NewArgumentCountError(1, len(args))
		}
		numDays, err := ParseNumDays(args[0])
		if err != nil {
			return 0, nil, err
		}
		deliveries, err := csv.NewLoader().LoadDeliveries(c.config.DeliveriesFile)
		if err != nil {
			return 0, nil, fmt.Errorf("error loading deliveries: %w", err)
		}
		return numDays, deliveries, nil

	default:
		if len(args) != 2 {
			return 0, nil, entities.NewArgumentCountError(2, len(args))
		}
		numDays, err := ParseNumDays(args[0])
		if err != nil {
			return 0, nil, err
		}
		parsed, err := domainservices.ParseDeliverySpec(args[1])
		if err != nil {
			return 0, nil, fmt.Errorf("error parsing delivery specification: %w", err)
		}
		deliveries := make([]*entities.DeliveryEvent, len(parsed))
		for i := range parsed {
			deliveries[i] = &parsed[i]
		}
		return numDays, deliveries, nil
	}
}

// ParseNumDays parses the simulation horizon argument
func ParseNumDays(arg string) (int, error) {
	numDays, err := strconv.Atoi(arg)
	if err != nil {
		return 0, entities.NewNonIntegerArgumentError(arg, err)
	}
	if numDays < 1 {
		return 0, entities.NewNonIntegerArgumentError(arg, nil)
	}
	return numDays, nil
}

// showHelp displays the help message
func (c *SimulateCommand) showHelp() {
	fmt.Fprintf(c.config.Stdout, `breadsim - Perishable bread inventory simulator

USAGE:
    breadsim [options] NUM_DAYS "DELIVERIES"     # Deliveries as (day,quantity) tuples
    breadsim [options] -deliveries <file> NUM_DAYS
    breadsim [options] -scenario <file>

The household eats %d units per day, oldest bread first. Stock left after
NUM_DAYS is reported as waste; days without enough bread are shortfall days.

OPTIONS:
    -scenario <file>    YAML scenario with num_days, spec and/or deliveries
    -deliveries <file>  CSV file with header day,quantity[,provider]
    -format <fmt>       Output format: %s (default: text)
    -verbose            Include the daily ledger and stock timeline
    -events             Append the simulation event log to the report
    -h, -help           Show this help message

EXAMPLES:
    breadsim 60 "(19,250) (40,200) (50,40)"
    breadsim -format json 60 ""

ENVIRONMENT:
    BREADSIM_LOG_LEVEL   debug, info, warn or error (default: warn)
    BREADSIM_LOG_FORMAT  text or json (default: text)
    Logs go to stderr and never change simulation results. A .env file in
    the working directory is read if present.
`, entities.DailyConsumption, strings.Join(output.Formats, ", "))
}
