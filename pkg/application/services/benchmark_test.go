package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	domainservices "github.com/vsinha/breadsim/pkg/domain/services"
	"github.com/vsinha/breadsim/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/vsinha/breadsim/pkg/infrastructure/testing"
)

// longHorizonSpec schedules a delivery every third day, each large enough
// that stock piles up and the ledger carries many live batches.
func longHorizonSpec(numDays int) string {
	var tokens []string
	for day := 1; day <= numDays; day += 3 {
		tokens = append(tokens, fmt.Sprintf("(%d,%d)", day, 80+day%7))
	}
	return strings.Join(tokens, " ")
}

func BenchmarkSimulationService_Run(b *testing.B) {
	ctx := context.Background()
	const numDays = 20000

	deliveries, err := domainservices.ParseDeliverySpec(longHorizonSpec(numDays))
	if err != nil {
		b.Fatalf("Failed to parse deliveries: %v", err)
	}
	repo := testhelpers.BuildDeliveryRepositoryFromEvents(deliveries)
	service := NewSimulationService(memory.NewLedger, nil, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Run(ctx, SimulationConfig{NumDays: numDays}, repo)
		if err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkSimulationService_RunScenarios(b *testing.B) {
	ctx := context.Background()
	service := NewSimulationService(memory.NewLedger, nil, nil)

	for _, scenario := range testhelpers.AllScenarios() {
		repo := testhelpers.BuildDeliveryRepository(scenario.Spec)
		b.Run(scenario.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := service.Run(ctx, SimulationConfig{NumDays: scenario.NumDays}, repo); err != nil {
					b.Fatalf("Run failed: %v", err)
				}
			}
		})
	}
}
