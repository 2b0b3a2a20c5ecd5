package entities

import (
	"fmt"
	"sort"
)

// DeliveryEvent is a single scheduled drop of bread by a provider
type DeliveryEvent struct {
	Day      Day
	Quantity Quantity
	Provider string
	// Sequence is the position of the event in its source, used to keep
	// same-day deliveries in input order.
	Sequence int
}

// NewDeliveryEvent creates a validated DeliveryEvent
func NewDeliveryEvent(day Day, quantity Quantity, provider string, sequence int) (*DeliveryEvent, error) {
	event := DeliveryEvent{
		Day:      day,
		Quantity: quantity,
		Provider: provider,
		Sequence: sequence,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return &event, nil
}

// Validate checks the day and quantity bounds
func (e DeliveryEvent) Validate() error {
	if e.Day < 1 {
		return NewValidationError(e.String(), fmt.Sprintf("day must be at least 1, got %d", e.Day))
	}
	if e.Quantity <= 0 {
		return NewValidationError(e.String(), fmt.Sprintf("quantity must be positive, got %d", e.Quantity))
	}
	return nil
}

// String renders the event in tuple form, e.g. (5,500)
func (e DeliveryEvent) String() string {
	return fmt.Sprintf("(%d,%d)", e.Day, e.Quantity)
}

// SortDeliveryEvents orders events by day, keeping input order on ties
func SortDeliveryEvents(events []DeliveryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Day < events[j].Day
	})
}
