// Command example runs the long-gap delivery scenario through the library
// API and prints how staleness builds up while the first batch is eaten.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vsinha/breadsim/pkg/application/services"
	"github.com/vsinha/breadsim/pkg/domain/entities"
	domainservices "github.com/vsinha/breadsim/pkg/domain/services"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/breadsim/pkg/interfaces/cli/output"
)

func main() {
	deliveries, err := domainservices.ParseDeliverySpec("(19,250) (40,200) (50,40)")
	if err != nil {
		log.Fatalf("Failed to parse deliveries: %v", err)
	}

	pointers := make([]*entities.DeliveryEvent, len(deliveries))
	for i := range deliveries {
		pointers[i] = &deliveries[i]
	}

	deliveryRepo := memory.NewDeliveryRepository()
	if err := deliveryRepo.LoadDeliveries(pointers); err != nil {
		log.Fatalf("Failed to load deliveries: %v", err)
	}

	simulation := services.NewSimulationService(memory.NewLedger, nil, nil)
	result, err := simulation.Run(context.Background(), services.SimulationConfig{
		RunID:   "example",
		NumDays: 60,
	}, deliveryRepo)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Println("Staleness of bread eaten from the day 19 batch:")
	for _, record := range result.Days {
		for _, portion := range record.Portions {
			if portion.ArrivalDay == 19 {
				fmt.Printf("  day %2d: %2d units, %d days old\n", record.Day, portion.Quantity, portion.Age)
			}
		}
	}
	fmt.Println()

	if err := output.Generate(os.Stdout, result, output.Config{Format: "text"}); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
