package entities

import "math"

// Day is a 1-based simulated calendar day
type Day int

// Quantity represents a discrete number of bread units
type Quantity int64

// DailyConsumption is the number of units eaten every simulated day.
// The household eats oldest bread first and never adjusts this amount.
const DailyConsumption Quantity = 25

// ExpirationWindow is the number of days bread stays good. A unit eaten at
// this age or older was past its expiry.
const ExpirationWindow = 30

// Add returns q+other, or false when the sum does not fit in a Quantity.
// Both operands are expected to be non-negative.
func (q Quantity) Add(other Quantity) (Quantity, bool) {
	if other > 0 && q > math.MaxInt64-other {
		return 0, false
	}
	return q + other, true
}
