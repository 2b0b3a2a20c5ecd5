package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

// DeliveryParser turns a delivery specification such as
// "(19,250) (40,200) (50,40)" into validated, day-ordered events.
type DeliveryParser struct {
	tuplePattern *regexp.Regexp
}

// NewDeliveryParser creates a parser for (day,quantity) tuples
func NewDeliveryParser() *DeliveryParser {
	// A leading minus is accepted so negative values reach validation
	// instead of being reported as malformed.
	pattern := regexp.MustCompile(`^\((-?\d+),(-?\d+)\)$`)
	return &DeliveryParser{
		tuplePattern: pattern,
	}
}

var defaultParser = NewDeliveryParser()

// ParseDeliverySpec parses spec with the default parser
func ParseDeliverySpec(spec string) ([]entities.DeliveryEvent, error) {
	return defaultParser.Parse(spec)
}

// Parse splits spec on whitespace and parses every token as a tuple. An empty
// spec yields no events. The first bad token aborts parsing, as does a total
// quantity that no ledger could hold.
func (p *DeliveryParser) Parse(spec string) ([]entities.DeliveryEvent, error) {
	tokens := strings.Fields(spec)
	events := make([]entities.DeliveryEvent, 0, len(tokens))

	var total entities.Quantity
	for i, token := range tokens {
		event, err := p.ParseTuple(token, i)
		if err != nil {
			return nil, err
		}
		var ok bool
		if total, ok = total.Add(event.Quantity); !ok {
			return nil, entities.NewValidationError(token,
				fmt.Sprintf("total quantity of all deliveries exceeds %d", int64(math.MaxInt64)))
		}
		events = append(events, *event)
	}

	entities.SortDeliveryEvents(events)
	return events, nil
}

// ParseTuple parses a single (day,quantity) token
func (p *DeliveryParser) ParseTuple(token string, sequence int) (*entities.DeliveryEvent, error) {
	matches := p.tuplePattern.FindStringSubmatch(token)
	if matches == nil {
		return nil, entities.NewMalformedTupleError(token, diagnoseTuple(token))
	}

	day, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, entities.NewMalformedTupleError(token, "day is out of range")
	}
	qty, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return nil, entities.NewMalformedTupleError(token, "quantity is out of range")
	}

	return entities.NewDeliveryEvent(entities.Day(day), entities.Quantity(qty), "", sequence)
}

// diagnoseTuple explains why token failed to match the tuple pattern
func diagnoseTuple(token string) string {
	if !strings.HasPrefix(token, "(") || !strings.HasSuffix(token, ")") || len(token) < 2 {
		return "expected (day,quantity): missing parenthesis"
	}

	inner := token[1 : len(token)-1]
	fields := strings.Split(inner, ",")
	if len(fields) != 2 {
		return "expected (day,quantity): fields must be separated by a single comma"
	}
	for _, field := range fields {
		if _, err := strconv.ParseInt(field, 10, 64); err != nil {
			return "expected (day,quantity): fields must be integers"
		}
	}
	return "expected (day,quantity)"
}

// FormatDeliverySpec renders events back into canonical tuple form
func FormatDeliverySpec(events []entities.DeliveryEvent) string {
	tokens := make([]string, len(events))
	for i, event := range events {
		tokens[i] = event.String()
	}
	return strings.Join(tokens, " ")
}
