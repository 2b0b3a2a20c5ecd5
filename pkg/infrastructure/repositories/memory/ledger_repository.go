package memory

import (
	"fmt"
	"math"
	"sort"

	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/repositories"
)

// compactThreshold is the number of pruned slots tolerated before the
// backing slice is shifted down.
const compactThreshold = 32

// LedgerRepository provides in-memory FIFO storage of bread batches.
// Batches live in a slice used as a deque: exhausted batches are popped
// from the front by advancing head, new batches are appended or inserted
// at their sorted position.
type LedgerRepository struct {
	batches []entities.Batch
	head    int
	onHand  entities.Quantity
}

// NewLedgerRepository creates a new in-memory ledger
func NewLedgerRepository(capacity int) *LedgerRepository {
	return &LedgerRepository{
		batches: make([]entities.Batch, 0, capacity),
	}
}

// NewLedger returns an empty ledger behind the repository interface
func NewLedger() repositories.LedgerRepository {
	return NewLedgerRepository(16)
}

// Verify interface compliance
var _ repositories.LedgerRepository = (*LedgerRepository)(nil)

// Admit adds a delivery as a new batch. Same-day batches are never merged
// and keep admission order.
func (r *LedgerRepository) Admit(day entities.Day, quantity entities.Quantity, provider string) error {
	if day < 1 {
		return entities.NewValidationError(fmt.Sprintf("(%d,%d)", day, quantity),
			fmt.Sprintf("day must be at least 1, got %d", day))
	}
	if quantity <= 0 {
		return entities.NewValidationError(fmt.Sprintf("(%d,%d)", day, quantity),
			fmt.Sprintf("quantity must be positive, got %d", quantity))
	}
	onHand, ok := r.onHand.Add(quantity)
	if !ok {
		return entities.NewValidationError(fmt.Sprintf("(%d,%d)", day, quantity),
			fmt.Sprintf("stock on hand would exceed %d units", int64(math.MaxInt64)))
	}

	batch := entities.Batch{
		ArrivalDay: day,
		Delivered:  quantity,
		Remaining:  quantity,
		Provider:   provider,
	}

	n := len(r.batches)
	if n == r.head || r.batches[n-1].ArrivalDay <= day {
		r.batches = append(r.batches, batch)
	} else {
		live := r.batches[r.head:]
		idx := r.head + sort.Search(len(live), func(i int) bool {
			return live[i].ArrivalDay > day
		})
		r.batches = append(r.batches, entities.Batch{})
		copy(r.batches[idx+1:], r.batches[idx:n])
		r.batches[idx] = batch
	}

	r.onHand = onHand
	return nil
}

// Consume withdraws up to amount units, oldest batch first. Any demand the
// ledger cannot cover is returned as shortfall.
func (r *LedgerRepository) Consume(amount entities.Quantity, currentDay entities.Day) entities.ConsumptionResult {
	result := entities.ConsumptionResult{
		Requested: amount,
		Portions:  []entities.ConsumedPortion{},
	}
	if amount <= 0 {
		return result
	}

	remaining := amount
	for i := r.head; i < len(r.batches) && remaining > 0; i++ {
		batch := &r.batches[i]
		if batch.Exhausted() {
			continue
		}

		take := min(remaining, batch.Remaining)
		batch.Remaining -= take
		remaining -= take

		result.Portions = append(result.Portions, entities.ConsumedPortion{
			ArrivalDay: batch.ArrivalDay,
			Provider:   batch.Provider,
			Quantity:   take,
			Age:        batch.Age(currentDay),
		})
		result.Consumed += take
	}

	r.onHand -= result.Consumed
	result.Shortfall = remaining
	r.prune()

	return result
}

// prune pops exhausted batches off the front of the deque
func (r *LedgerRepository) prune() {
	for r.head < len(r.batches) && r.batches[r.head].Exhausted() {
		r.batches[r.head] = entities.Batch{}
		r.head++
	}

	if r.head == len(r.batches) {
		r.batches = r.batches[:0]
		r.head = 0
		return
	}

	if r.head >= compactThreshold && r.head*2 >= len(r.batches) {
		n := copy(r.batches, r.batches[r.head:])
		r.batches = r.batches[:n]
		r.head = 0
	}
}

// OnHand returns the total number of units still in the ledger
func (r *LedgerRepository) OnHand() entities.Quantity {
	return r.onHand
}

// Batches returns a snapshot of the live batches in consumption order
func (r *LedgerRepository) Batches() []entities.Batch {
	snapshot := make([]entities.Batch, len(r.batches)-r.head)
	copy(snapshot, r.batches[r.head:])
	return snapshot
}

// Len returns the number of live batches
func (r *LedgerRepository) Len() int {
	return len(r.batches) - r.head
}

// OldestAge returns the age of the next batch to be eaten
func (r *LedgerRepository) OldestAge(currentDay entities.Day) (int, bool) {
	if r.head == len(r.batches) {
		return 0, false
	}
	return r.batches[r.head].Age(currentDay), true
}

// Drain empties the ledger and returns the number of units discarded
func (r *LedgerRepository) Drain() entities.Quantity {
	drained := r.onHand
	r.batches = r.batches[:0]
	r.head = 0
	r.onHand = 0
	return drained
}
