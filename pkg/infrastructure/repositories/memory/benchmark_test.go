package memory

import (
	"testing"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

func BenchmarkLedgerRepository_Consume(b *testing.B) {
	const batches = 10000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		repo := NewLedgerRepository(batches)
		for day := entities.Day(1); day <= batches; day++ {
			if err := repo.Admit(day, 10, ""); err != nil {
				b.Fatalf("Admit failed: %v", err)
			}
		}
		b.StartTimer()

		// Every withdrawal spans several batches and the deque compacts
		// repeatedly as the head advances.
		for day := entities.Day(1); repo.OnHand() > 0; day++ {
			repo.Consume(entities.DailyConsumption, day)
		}
	}
}

func BenchmarkLedgerRepository_AdmitOutOfOrder(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		repo := NewLedgerRepository(0)
		for day := entities.Day(1000); day >= 1; day-- {
			if err := repo.Admit(day, 5, ""); err != nil {
				b.Fatalf("Admit failed: %v", err)
			}
		}
	}
}
