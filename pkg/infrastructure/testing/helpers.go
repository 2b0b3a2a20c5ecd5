package testing

import (
	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/services"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/memory"
)

// Scenario is a named delivery specification with its horizon
type Scenario struct {
	Name    string
	NumDays int
	Spec    string
}

// Well-known scenarios used across package tests
var (
	NoDeliveries = Scenario{Name: "no_deliveries", NumDays: 60, Spec: ""}
	SingleBatch  = Scenario{Name: "single_batch", NumDays: 60, Spec: "(5,500)"}
	LongGap      = Scenario{Name: "long_gap", NumDays: 60, Spec: "(19,250) (40,200) (50,40)"}
	ThreeVendors = Scenario{Name: "three_vendors", NumDays: 60, Spec: "(15,100) (35,500) (50,30)"}
	Oversupply   = Scenario{Name: "oversupply", NumDays: 10, Spec: "(1,100) (3,200)"}
	// Expiring holds one batch long enough that its last ten days are eaten
	// past the expiration window.
	Expiring = Scenario{Name: "expiring", NumDays: 45, Spec: "(1,1000)"}
)

// AllScenarios returns every well-known scenario
func AllScenarios() []Scenario {
	return []Scenario{NoDeliveries, SingleBatch, LongGap, ThreeVendors, Oversupply, Expiring}
}

// BuildDeliveryRepository parses spec and loads it into a fresh repository.
// It panics on a bad spec; fixtures are expected to be valid.
func BuildDeliveryRepository(spec string) *memory.DeliveryRepository {
	events, err := services.ParseDeliverySpec(spec)
	if err != nil {
		panic(err)
	}
	return BuildDeliveryRepositoryFromEvents(events)
}

// BuildDeliveryRepositoryFromEvents loads already-built events into a fresh repository
func BuildDeliveryRepositoryFromEvents(events []entities.DeliveryEvent) *memory.DeliveryRepository {
	repo := memory.NewDeliveryRepository()
	pointers := make([]*entities.DeliveryEvent, len(events))
	for i := range events {
		pointers[i] = &events[i]
	}
	if err := repo.LoadDeliveries(pointers); err != nil {
		panic(err)
	}
	return repo
}
