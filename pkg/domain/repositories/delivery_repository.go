package repositories

import "github.com/vsinha/breadsim/pkg/domain/entities"

// DeliveryRepository provides access to the scheduled deliveries of a run
type DeliveryRepository interface {
	LoadDeliveries(events []*entities.DeliveryEvent) error
	GetDeliveries() ([]*entities.DeliveryEvent, error)
	GetDeliveriesForDay(day entities.Day) ([]*entities.DeliveryEvent, error)
	GetDeliveriesAfter(day entities.Day) ([]*entities.DeliveryEvent, error)
}
