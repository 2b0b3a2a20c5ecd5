package repositories

import "github.com/vsinha/breadsim/pkg/domain/entities"

// LedgerRepository holds aging batches of bread ordered by arrival day
type LedgerRepository interface {
	Admit(day entities.Day, quantity entities.Quantity, provider string) error
	Consume(amount entities.Quantity, currentDay entities.Day) entities.ConsumptionResult
	OnHand() entities.Quantity
	Batches() []entities.Batch
	OldestAge(currentDay entities.Day) (int, bool)
	Drain() entities.Quantity
}
