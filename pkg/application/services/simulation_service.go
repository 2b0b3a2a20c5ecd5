package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vsinha/breadsim/pkg/application/dto"
	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/repositories"
	"github.com/vsinha/breadsim/pkg/infrastructure/events"
)

// ErrConservationViolated means units were created or lost inside the ledger
var ErrConservationViolated = errors.New("conservation invariant violated")

// dayRecordHint bounds the up-front allocation of day records. Longer
// horizons grow the slice as days are simulated.
const dayRecordHint = 4096

// LedgerFactory builds the empty ledger a run will own
type LedgerFactory func() repositories.LedgerRepository

// SimulationConfig holds the immutable parameters of one run
type SimulationConfig struct {
	RunID   string
	NumDays int
	// DailyConsumption defaults to entities.DailyConsumption when zero
	DailyConsumption entities.Quantity
}

// SimulationService drives the ledger day by day over the horizon
type SimulationService struct {
	newLedger  LedgerFactory
	eventStore events.EventStore
	logger     *slog.Logger
}

// NewSimulationService creates a simulation service. eventStore and logger
// may be nil. The logger is used as given; callers attach the run ID.
func NewSimulationService(newLedger LedgerFactory, eventStore events.EventStore, logger *slog.Logger) *SimulationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SimulationService{
		newLedger:  newLedger,
		eventStore: eventStore,
		logger:     logger,
	}
}

// runState is owned by a single Run call
type runState struct {
	config  SimulationConfig
	ledger  repositories.LedgerRepository
	metrics entities.Metrics
	logger  *slog.Logger
}

// Run simulates days 1..NumDays. Every day admits that day's deliveries,
// then withdraws the daily consumption oldest batch first. Stock left after
// the last day is counted as waste. The loop never exits early.
func (s *SimulationService) Run(
	ctx context.Context,
	config SimulationConfig,
	deliveryRepo repositories.DeliveryRepository,
) (*dto.SimulationResult, error) {
	if config.NumDays < 1 {
		return nil, entities.NewNonIntegerArgumentError(strconv.Itoa(config.NumDays), nil)
	}
	if config.DailyConsumption <= 0 {
		config.DailyConsumption = entities.DailyConsumption
	}

	deliveries, err := deliveryRepo.GetDeliveries()
	if err != nil {
		return nil, fmt.Errorf("failed to load deliveries: %w", err)
	}

	state := &runState{
		config: config,
		ledger: s.newLedger(),
		logger: s.logger,
	}

	result := &dto.SimulationResult{
		RunID:            config.RunID,
		NumDays:          config.NumDays,
		DailyConsumption: config.DailyConsumption,
		Deliveries:       make([]entities.DeliveryEvent, 0, len(deliveries)),
		Days:             make([]dto.DayRecord, 0, min(config.NumDays, dayRecordHint)),
	}
	for _, delivery := range deliveries {
		result.Deliveries = append(result.Deliveries, *delivery)
	}

	state.logger.Debug("simulation started",
		"num_days", config.NumDays,
		"daily_consumption", config.DailyConsumption,
		"deliveries", len(deliveries))

	for d := 1; d <= config.NumDays; d++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation stopped before day %d: %w", d, err)
		}

		record, err := s.simulateDay(state, entities.Day(d), deliveryRepo)
		if err != nil {
			return nil, err
		}
		result.Days = append(result.Days, record)
	}

	lastDay := entities.Day(config.NumDays)
	waste := state.ledger.Drain()
	state.metrics.RecordWaste(waste)
	if waste > 0 {
		if err := s.emit(events.NewWasteRecordedEvent(config.RunID, lastDay, waste)); err != nil {
			return nil, err
		}
	}
	if !state.metrics.Balanced(state.ledger.OnHand()) {
		return nil, fmt.Errorf("after draining ledger: %w", ErrConservationViolated)
	}

	late, err := deliveryRepo.GetDeliveriesAfter(lastDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load deliveries after horizon: %w", err)
	}
	result.UnscheduledDeliveries = len(late)
	if len(late) > 0 {
		state.logger.Warn("deliveries scheduled after the horizon were ignored",
			"count", len(late),
			"first_day", late[0].Day)
	}

	result.Metrics = state.metrics

	state.logger.Info("simulation finished",
		"delivered", state.metrics.TotalDelivered,
		"consumed", state.metrics.TotalConsumed,
		"waste", state.metrics.TotalWaste,
		"shortfall_days", state.metrics.ShortfallDays,
		"max_staleness", state.metrics.MaxStalenessObserved,
		"expired_eaten", state.metrics.ExpiredUnitsEaten)

	return result, nil
}

// simulateDay applies one day's admissions then its consumption
func (s *SimulationService) simulateDay(
	state *runState,
	day entities.Day,
	deliveryRepo repositories.DeliveryRepository,
) (dto.DayRecord, error) {
	record := dto.DayRecord{Day: day, OldestAge: -1}

	arrivals, err := deliveryRepo.GetDeliveriesForDay(day)
	if err != nil {
		return record, fmt.Errorf("failed to load deliveries for day %d: %w", day, err)
	}

	for _, delivery := range arrivals {
		if err := state.ledger.Admit(delivery.Day, delivery.Quantity, delivery.Provider); err != nil {
			return record, fmt.Errorf("failed to admit delivery %s: %w", delivery, err)
		}
		state.metrics.RecordDelivery(delivery.Quantity)
		record.Admitted += delivery.Quantity

		if err := s.emit(events.NewDeliveryAdmittedEvent(state.config.RunID, *delivery, state.ledger.OnHand())); err != nil {
			return record, err
		}
	}

	consumption := state.ledger.Consume(state.config.DailyConsumption, day)
	state.metrics.RecordConsumption(consumption)

	record.Consumed = consumption.Consumed
	record.Shortfall = consumption.Shortfall
	record.Portions = consumption.Portions
	record.OnHand = state.ledger.OnHand()
	if age, ok := state.ledger.OldestAge(day); ok {
		record.OldestAge = age
	}

	for _, portion := range consumption.Portions {
		if portion.Expired() {
			record.ExpiredEaten += portion.Quantity
		}
		if err := s.emit(events.NewBreadConsumedEvent(state.config.RunID, day, portion)); err != nil {
			return record, err
		}
	}
	if consumption.Shortfall > 0 {
		state.logger.Debug("shortfall", "day", day, "unmet", consumption.Shortfall)
		if err := s.emit(events.NewShortfallRecordedEvent(state.config.RunID, day, consumption.Requested, consumption.Shortfall)); err != nil {
			return record, err
		}
	}

	if !state.metrics.Balanced(record.OnHand) {
		return record, fmt.Errorf("day %d: %w", day, ErrConservationViolated)
	}

	return record, nil
}

func (s *SimulationService) emit(event events.Event) error {
	if s.eventStore == nil {
		return nil
	}
	if err := s.eventStore.AppendEvent(event.StreamID(), event); err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Type(), err)
	}
	return nil
}
