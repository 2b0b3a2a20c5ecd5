package memory

import (
	"fmt"
	"math"

	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/repositories"
)

// DeliveryRepository provides in-memory storage of scheduled deliveries
type DeliveryRepository struct {
	deliveries []entities.DeliveryEvent
	byDay      map[entities.Day][]int
	total      entities.Quantity
}

// NewDeliveryRepository creates a new in-memory delivery repository
func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{
		deliveries: []entities.DeliveryEvent{},
		byDay:      make(map[entities.Day][]int),
	}
}

// Verify interface compliance
var _ repositories.DeliveryRepository = (*DeliveryRepository)(nil)

// LoadDeliveries validates and stores deliveries, keeping them sorted by day
// with load order preserved on ties. The combined quantity of everything
// loaded must fit in a Quantity; nothing is stored when any event is rejected.
func (r *DeliveryRepository) LoadDeliveries(events []*entities.DeliveryEvent) error {
	total := r.total
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
		var ok bool
		if total, ok = total.Add(event.Quantity); !ok {
			return entities.NewValidationError(event.String(),
				fmt.Sprintf("total quantity of all deliveries exceeds %d", int64(math.MaxInt64)))
		}
	}

	r.total = total
	for _, event := range events {
		r.deliveries = append(r.deliveries, *event)
	}

	entities.SortDeliveryEvents(r.deliveries)

	r.byDay = make(map[entities.Day][]int, len(r.deliveries))
	for i, event := range r.deliveries {
		r.byDay[event.Day] = append(r.byDay[event.Day], i)
	}
	return nil
}

// GetDeliveries returns all deliveries in schedule order
func (r *DeliveryRepository) GetDeliveries() ([]*entities.DeliveryEvent, error) {
	deliveries := make([]*entities.DeliveryEvent, 0, len(r.deliveries))
	for i := range r.deliveries {
		deliveries = append(deliveries, &r.deliveries[i])
	}
	return deliveries, nil
}

// GetDeliveriesForDay returns the deliveries arriving on a day, in schedule order
func (r *DeliveryRepository) GetDeliveriesForDay(day entities.Day) ([]*entities.DeliveryEvent, error) {
	indexes := r.byDay[day]
	deliveries := make([]*entities.DeliveryEvent, 0, len(indexes))
	for _, i := range indexes {
		deliveries = append(deliveries, &r.deliveries[i])
	}
	return deliveries, nil
}

// GetDeliveriesAfter returns the deliveries scheduled later than day
func (r *DeliveryRepository) GetDeliveriesAfter(day entities.Day) ([]*entities.DeliveryEvent, error) {
	var deliveries []*entities.DeliveryEvent
	for i := range r.deliveries {
		if r.deliveries[i].Day > day {
			deliveries = append(deliveries, &r.deliveries[i])
		}
	}
	return deliveries, nil
}
