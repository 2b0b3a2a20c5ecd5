package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/breadsim/pkg/domain/entities"
)

// ratioPlaces is the precision of derived ratios in reports
const ratioPlaces = 4

// SimulationResult contains the complete output of a simulation run
type SimulationResult struct {
	RunID            string
	NumDays          int
	DailyConsumption entities.Quantity
	Deliveries       []entities.DeliveryEvent
	// UnscheduledDeliveries counts deliveries due after the horizon; they
	// never enter the ledger.
	UnscheduledDeliveries int
	Metrics               entities.Metrics
	Days                  []DayRecord
}

// DayRecord captures what happened on one simulated day
type DayRecord struct {
	Day          entities.Day
	Admitted     entities.Quantity
	Consumed     entities.Quantity
	Shortfall    entities.Quantity
	OnHand       entities.Quantity
	// OldestAge is the age of the oldest batch left at the end of the day,
	// or -1 when the ledger is empty.
	OldestAge    int
	// ExpiredEaten is the part of the day's consumption at least
	// entities.ExpirationWindow days old
	ExpiredEaten entities.Quantity
	Portions     []entities.ConsumedPortion
}

// Summary is the final metrics snapshot with derived ratios
type Summary struct {
	NumDays              int
	DailyConsumption     entities.Quantity
	TotalDelivered       entities.Quantity
	TotalConsumed        entities.Quantity
	TotalWaste           entities.Quantity
	TotalShortfallUnits  entities.Quantity
	ShortfallDays        int
	MaxStalenessObserved int
	StaleUnitsEaten      entities.Quantity
	ExpiredUnitsEaten    entities.Quantity
	WasteRate            decimal.Decimal
	FillRate             decimal.Decimal
	AverageStaleness     decimal.Decimal
}

// NewSummary derives the report summary from a finished run
func NewSummary(result *SimulationResult) Summary {
	m := result.Metrics
	demand := decimal.NewFromInt(int64(result.NumDays)).Mul(decimal.NewFromInt(int64(result.DailyConsumption)))

	return Summary{
		NumDays:              result.NumDays,
		DailyConsumption:     result.DailyConsumption,
		TotalDelivered:       m.TotalDelivered,
		TotalConsumed:        m.TotalConsumed,
		TotalWaste:           m.TotalWaste,
		TotalShortfallUnits:  m.TotalShortfallUnits,
		ShortfallDays:        m.ShortfallDays,
		MaxStalenessObserved: m.MaxStalenessObserved,
		StaleUnitsEaten:      m.StaleUnitsEaten,
		ExpiredUnitsEaten:    m.ExpiredUnitsEaten,
		WasteRate:            ratio(decimal.NewFromInt(int64(m.TotalWaste)), decimal.NewFromInt(int64(m.TotalDelivered))),
		FillRate:             ratio(decimal.NewFromInt(int64(m.TotalConsumed)), demand),
		AverageStaleness:     ratio(decimal.NewFromInt(m.StalenessUnitDays), decimal.NewFromInt(int64(m.TotalConsumed))),
	}
}

// ratio divides and rounds, treating a zero denominator as a zero ratio
func ratio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.DivRound(denominator, ratioPlaces)
}
