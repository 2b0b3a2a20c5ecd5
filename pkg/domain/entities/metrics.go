package entities

// Metrics accumulates simulation outcomes. Every field only grows.
type Metrics struct {
	TotalDelivered       Quantity
	TotalConsumed        Quantity
	TotalWaste           Quantity
	TotalShortfallUnits  Quantity
	ShortfallDays        int
	MaxStalenessObserved int
	StaleUnitsEaten      Quantity
	ExpiredUnitsEaten    Quantity
	// StalenessUnitDays is the sum of quantity*age over every eaten portion
	StalenessUnitDays int64
}

// RecordDelivery counts an admitted delivery
func (m *Metrics) RecordDelivery(quantity Quantity) {
	m.TotalDelivered += quantity
}

// RecordConsumption folds one day's withdrawal into the totals
func (m *Metrics) RecordConsumption(result ConsumptionResult) {
	for _, portion := range result.Portions {
		m.TotalConsumed += portion.Quantity
		m.StalenessUnitDays += int64(portion.Quantity) * int64(portion.Age)
		if portion.Age > m.MaxStalenessObserved {
			m.MaxStalenessObserved = portion.Age
		}
		if portion.Stale() {
			m.StaleUnitsEaten += portion.Quantity
		}
		if portion.Expired() {
			m.ExpiredUnitsEaten += portion.Quantity
		}
	}
	if result.Shortfall > 0 {
		m.ShortfallDays++
		m.TotalShortfallUnits += result.Shortfall
	}
}

// RecordWaste counts stock left uneaten at the end of the horizon
func (m *Metrics) RecordWaste(quantity Quantity) {
	m.TotalWaste += quantity
}

// Balanced checks conservation: everything delivered was eaten, wasted or
// is still on hand.
func (m Metrics) Balanced(onHand Quantity) bool {
	return m.TotalDelivered == m.TotalConsumed+m.TotalWaste+onHand
}
