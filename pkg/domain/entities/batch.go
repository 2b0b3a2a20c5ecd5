package entities

// Batch is the stock left from one admitted delivery
type Batch struct {
	ArrivalDay Day
	Delivered  Quantity
	Remaining  Quantity
	Provider   string
}

// Age returns the staleness of the batch on the given day
func (b Batch) Age(currentDay Day) int {
	return int(currentDay - b.ArrivalDay)
}

// Exhausted reports whether every unit of the batch has been eaten
func (b Batch) Exhausted() bool {
	return b.Remaining == 0
}

// ConsumedPortion is the part of a single withdrawal taken from one batch
type ConsumedPortion struct {
	ArrivalDay Day
	Provider   string
	Quantity   Quantity
	Age        int
}

// Stale reports whether the portion was eaten after its arrival day
func (p ConsumedPortion) Stale() bool {
	return p.Age > 0
}

// Expired reports whether the portion was eaten past the expiration window
func (p ConsumedPortion) Expired() bool {
	return p.Age >= ExpirationWindow
}

// ConsumptionResult represents the result of one daily withdrawal
type ConsumptionResult struct {
	Requested Quantity
	Consumed  Quantity
	Shortfall Quantity
	Portions  []ConsumedPortion
}
