package yaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/services"
)

// Scenario is the on-disk form of a simulation input:
//
//	num_days: 60
//	spec: "(19,250) (40,200)"
//	deliveries:
//	  - {day: 50, quantity: 40, provider: corner}
//
// spec and deliveries may be combined; spec tuples come first.
type Scenario struct {
	NumDays    int             `yaml:"num_days"`
	Spec       string          `yaml:"spec"`
	Deliveries []DeliveryEntry `yaml:"deliveries"`
}

// DeliveryEntry is one structured delivery in a scenario file
type DeliveryEntry struct {
	Day      int    `yaml:"day"`
	Quantity int64  `yaml:"quantity"`
	Provider string `yaml:"provider"`
}

// Loader handles loading scenarios from YAML files
type Loader struct {
	parser *services.DeliveryParser
}

// NewLoader creates a new YAML scenario loader
func NewLoader() *Loader {
	return &Loader{parser: services.NewDeliveryParser()}
}

// LoadScenario reads a scenario file and returns its horizon and deliveries
func (l *Loader) LoadScenario(filename string) (int, []*entities.DeliveryEvent, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadScenario(file)
}

// ReadScenario decodes a scenario and validates every delivery in it
func (l *Loader) ReadScenario(r io.Reader) (int, []*entities.DeliveryEvent, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil && err != io.EOF {
		return 0, nil, fmt.Errorf("failed to decode scenario YAML: %w", err)
	}

	if scenario.NumDays < 1 {
		return 0, nil, entities.NewNonIntegerArgumentError(fmt.Sprint(scenario.NumDays), nil)
	}

	parsed, err := l.parser.Parse(scenario.Spec)
	if err != nil {
		return 0, nil, fmt.Errorf("scenario spec: %w", err)
	}

	deliveries := make([]*entities.DeliveryEvent, 0, len(parsed)+len(scenario.Deliveries))
	for i := range parsed {
		deliveries = append(deliveries, &parsed[i])
	}

	for i, entry := range scenario.Deliveries {
		sequence := len(parsed) + i
		delivery, err := entities.NewDeliveryEvent(entities.Day(entry.Day), entities.Quantity(entry.Quantity), entry.Provider, sequence)
		if err != nil {
			return 0, nil, fmt.Errorf("scenario delivery %d: %w", i+1, err)
		}
		deliveries = append(deliveries, delivery)
	}

	return scenario.NumDays, deliveries, nil
}
