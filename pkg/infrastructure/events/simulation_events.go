package events

import (
	"github.com/vsinha/breadsim/pkg/domain/entities"
)

const (
	DeliveryAdmittedEvent  = "delivery.admitted"
	BreadConsumedEvent     = "bread.consumed"
	ShortfallRecordedEvent = "shortfall.recorded"
	WasteRecordedEvent     = "waste.recorded"
)

// AllEventTypes lists every event a simulation run can emit
var AllEventTypes = []string{
	DeliveryAdmittedEvent,
	BreadConsumedEvent,
	ShortfallRecordedEvent,
	WasteRecordedEvent,
}

type DeliveryAdmitted struct {
	Delivery entities.DeliveryEvent `json:"delivery"`
	OnHand   entities.Quantity      `json:"on_hand"`
}

type BreadConsumed struct {
	Portion entities.ConsumedPortion `json:"portion"`
}

type ShortfallRecorded struct {
	Requested entities.Quantity `json:"requested"`
	Unmet     entities.Quantity `json:"unmet"`
}

type WasteRecorded struct {
	Quantity entities.Quantity `json:"quantity"`
}

func NewDeliveryAdmittedEvent(runID string, delivery entities.DeliveryEvent, onHand entities.Quantity) Event {
	return NewEvent(DeliveryAdmittedEvent, runID, delivery.Day, DeliveryAdmitted{
		Delivery: delivery,
		OnHand:   onHand,
	})
}

func NewBreadConsumedEvent(runID string, day entities.Day, portion entities.ConsumedPortion) Event {
	return NewEvent(BreadConsumedEvent, runID, day, BreadConsumed{Portion: portion})
}

func NewShortfallRecordedEvent(runID string, day entities.Day, requested, unmet entities.Quantity) Event {
	return NewEvent(ShortfallRecordedEvent, runID, day, ShortfallRecorded{
		Requested: requested,
		Unmet:     unmet,
	})
}

func NewWasteRecordedEvent(runID string, day entities.Day, quantity entities.Quantity) Event {
	return NewEvent(WasteRecordedEvent, runID, day, WasteRecorded{Quantity: quantity})
}
