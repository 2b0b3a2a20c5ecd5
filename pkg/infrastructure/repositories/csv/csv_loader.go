package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

// Loader handles loading delivery schedules from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var (
	deliveryHeader             = []string{"day", "quantity"}
	deliveryHeaderWithProvider = []string{"day", "quantity", "provider"}
)

// LoadDeliveries loads deliveries from a CSV file with a day,quantity[,provider] header
func (l *Loader) LoadDeliveries(filename string) ([]*entities.DeliveryEvent, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open deliveries file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadDeliveries(file)
}

// ReadDeliveries parses deliveries from CSV content. A header with no rows
// is a valid, empty schedule.
func (l *Loader) ReadDeliveries(r io.Reader) ([]*entities.DeliveryEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read deliveries CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("deliveries CSV must have a header")
	}

	header := records[0]
	expectedHeader := deliveryHeader
	if len(header) == len(deliveryHeaderWithProvider) {
		expectedHeader = deliveryHeaderWithProvider
	}
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("deliveries CSV header mismatch. Expected: %v or %v, Got: %v",
			deliveryHeader, deliveryHeaderWithProvider, header)
	}

	deliveries := make([]*entities.DeliveryEvent, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("deliveries CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		delivery, err := parseDelivery(record, i)
		if err != nil {
			return nil, fmt.Errorf("deliveries CSV row %d: %w", i+2, err)
		}

		deliveries = append(deliveries, delivery)
	}

	return deliveries, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseDelivery(record []string, sequence int) (*entities.DeliveryEvent, error) {
	raw := strings.Join(record, ",")

	day, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, entities.NewMalformedTupleError(raw, "day must be an integer")
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, entities.NewMalformedTupleError(raw, "quantity must be an integer")
	}

	provider := ""
	if len(record) > 2 {
		provider = strings.TrimSpace(record[2])
	}

	return entities.NewDeliveryEvent(entities.Day(day), entities.Quantity(qty), provider, sequence)
}
