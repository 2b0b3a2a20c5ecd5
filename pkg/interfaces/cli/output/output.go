package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/breadsim/pkg/application/dto"
	"github.com/vsinha/breadsim/pkg/domain/entities"
	"github.com/vsinha/breadsim/pkg/domain/services"
	"github.com/vsinha/breadsim/pkg/infrastructure/events"
)

// Formats lists the supported report formats
var Formats = []string{"text", "json", "yaml", "csv"}

// Config holds configuration for output generation
type Config struct {
	Format string
	// Verbose adds the per-day ledger to the report
	Verbose bool
	// Events, when non-empty, is appended to the report as an event log
	Events []events.Event
}

// Generate writes the report for result to w in the configured format
func Generate(w io.Writer, result *dto.SimulationResult, config Config) error {
	switch config.Format {
	case "", "text":
		return generateTextOutput(w, result, config)
	case "json":
		return generateJSONOutput(w, result, config)
	case "yaml":
		return generateYAMLOutput(w, result, config)
	case "csv":
		return generateCSVOutput(w, result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// ValidFormat reports whether format is supported
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// reportDocument is the machine-readable form of a report. Ratios are
// strings so they round-trip exactly.
type reportDocument struct {
	NumDays               int             `json:"num_days" yaml:"num_days"`
	DailyConsumption      int64           `json:"daily_consumption" yaml:"daily_consumption"`
	Deliveries            string          `json:"deliveries" yaml:"deliveries"`
	UnscheduledDeliveries int             `json:"unscheduled_deliveries" yaml:"unscheduled_deliveries"`
	TotalDelivered        int64           `json:"total_delivered" yaml:"total_delivered"`
	TotalConsumed         int64           `json:"total_consumed" yaml:"total_consumed"`
	TotalWaste            int64           `json:"total_waste" yaml:"total_waste"`
	ShortfallDays         int             `json:"shortfall_days" yaml:"shortfall_days"`
	ShortfallUnits        int64           `json:"shortfall_units" yaml:"shortfall_units"`
	MaxStalenessObserved  int             `json:"max_staleness_observed" yaml:"max_staleness_observed"`
	StaleUnitsEaten       int64           `json:"stale_units_eaten" yaml:"stale_units_eaten"`
	ExpiredUnitsEaten     int64           `json:"expired_units_eaten" yaml:"expired_units_eaten"`
	WasteRate             string          `json:"waste_rate" yaml:"waste_rate"`
	FillRate              string          `json:"fill_rate" yaml:"fill_rate"`
	AverageStaleness      string          `json:"average_staleness" yaml:"average_staleness"`
	Days                  []dayDocument   `json:"days,omitempty" yaml:"days,omitempty"`
	Events                []eventDocument `json:"events,omitempty" yaml:"events,omitempty"`
}

type eventDocument struct {
	Day    int    `json:"day" yaml:"day"`
	Type   string `json:"type" yaml:"type"`
	Detail string `json:"detail" yaml:"detail"`
}

type dayDocument struct {
	Day       int   `json:"day" yaml:"day"`
	Admitted  int64 `json:"admitted" yaml:"admitted"`
	Consumed  int64 `json:"consumed" yaml:"consumed"`
	Shortfall int64 `json:"shortfall" yaml:"shortfall"`
	OnHand    int64 `json:"on_hand" yaml:"on_hand"`
	OldestAge int   `json:"oldest_age" yaml:"oldest_age"`
	Expired   int64 `json:"expired_eaten" yaml:"expired_eaten"`
}

func newReportDocument(result *dto.SimulationResult, config Config) reportDocument {
	summary := dto.NewSummary(result)
	doc := reportDocument{
		NumDays:               summary.NumDays,
		DailyConsumption:      int64(summary.DailyConsumption),
		Deliveries:            services.FormatDeliverySpec(result.Deliveries),
		UnscheduledDeliveries: result.UnscheduledDeliveries,
		TotalDelivered:        int64(summary.TotalDelivered),
		TotalConsumed:         int64(summary.TotalConsumed),
		TotalWaste:            int64(summary.TotalWaste),
		ShortfallDays:         summary.ShortfallDays,
		ShortfallUnits:        int64(summary.TotalShortfallUnits),
		MaxStalenessObserved:  summary.MaxStalenessObserved,
		StaleUnitsEaten:       int64(summary.StaleUnitsEaten),
		ExpiredUnitsEaten:     int64(summary.ExpiredUnitsEaten),
		WasteRate:             summary.WasteRate.StringFixed(4),
		FillRate:              summary.FillRate.StringFixed(4),
		AverageStaleness:      summary.AverageStaleness.StringFixed(4),
	}

	if config.Verbose {
		doc.Days = make([]dayDocument, 0, len(result.Days))
		for _, record := range result.Days {
			doc.Days = append(doc.Days, dayDocument{
				Day:       int(record.Day),
				Admitted:  int64(record.Admitted),
				Consumed:  int64(record.Consumed),
				Shortfall: int64(record.Shortfall),
				OnHand:    int64(record.OnHand),
				OldestAge: record.OldestAge,
				Expired:   int64(record.ExpiredEaten),
			})
		}
	}

	if len(config.Events) > 0 {
		doc.Events = make([]eventDocument, 0, len(config.Events))
		for _, event := range config.Events {
			doc.Events = append(doc.Events, eventDocument{
				Day:    int(event.Day()),
				Type:   event.Type(),
				Detail: describeEvent(event),
			})
		}
	}
	return doc
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, result *dto.SimulationResult, config Config) error {
	doc := newReportDocument(result, Config{})
	var b strings.Builder

	deliveries := doc.Deliveries
	if deliveries == "" {
		deliveries = "(none)"
	}

	fmt.Fprintf(&b, "📊 Bread Simulation Summary\n")
	fmt.Fprintf(&b, "===========================\n\n")

	fmt.Fprintf(&b, "%-24s %d days\n", "Horizon:", doc.NumDays)
	fmt.Fprintf(&b, "%-24s %d units/day\n", "Daily consumption:", doc.DailyConsumption)
	fmt.Fprintf(&b, "%-24s %s\n", "Deliveries:", deliveries)
	if doc.UnscheduledDeliveries > 0 {
		fmt.Fprintf(&b, "%-24s %d\n", "After horizon:", doc.UnscheduledDeliveries)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-24s %d\n", "Total delivered:", doc.TotalDelivered)
	fmt.Fprintf(&b, "%-24s %d\n", "Total consumed:", doc.TotalConsumed)
	fmt.Fprintf(&b, "%-24s %d\n", "Total waste:", doc.TotalWaste)
	fmt.Fprintf(&b, "%-24s %d\n", "Shortfall days:", doc.ShortfallDays)
	fmt.Fprintf(&b, "%-24s %d\n", "Shortfall units:", doc.ShortfallUnits)
	fmt.Fprintf(&b, "%-24s %d\n", "Max staleness observed:", doc.MaxStalenessObserved)
	fmt.Fprintf(&b, "%-24s %d\n", "Stale units eaten:", doc.StaleUnitsEaten)
	fmt.Fprintf(&b, "%-24s %d (%d+ days old)\n", "Expired units eaten:", doc.ExpiredUnitsEaten, entities.ExpirationWindow)
	fmt.Fprintf(&b, "%-24s %s\n", "Waste rate:", doc.WasteRate)
	fmt.Fprintf(&b, "%-24s %s\n", "Fill rate:", doc.FillRate)
	fmt.Fprintf(&b, "%-24s %s\n", "Average staleness:", doc.AverageStaleness)

	if config.Verbose && len(result.Days) > 0 {
		b.WriteString("\n📅 Daily Ledger:\n")
		fmt.Fprintf(&b, "%-5s %-9s %-9s %-10s %-8s %-10s %-7s\n",
			"Day", "Admitted", "Consumed", "Shortfall", "On Hand", "Oldest Age", "Expired")
		fmt.Fprintf(&b, "%-5s %-9s %-9s %-10s %-8s %-10s %-7s\n",
			"-----", "---------", "---------", "----------", "--------", "----------", "-------")

		for _, record := range result.Days {
			oldest := "-"
			if record.OldestAge >= 0 {
				oldest = strconv.Itoa(record.OldestAge)
			}
			fmt.Fprintf(&b, "%-5d %-9d %-9d %-10d %-8d %-10s %-7d\n",
				record.Day,
				record.Admitted,
				record.Consumed,
				record.Shortfall,
				record.OnHand,
				oldest,
				record.ExpiredEaten)
		}

		b.WriteString("\n📈 Stock Timeline:\n")
		NewStockTimeline(result).Render(&b)
	}

	if len(config.Events) > 0 {
		b.WriteString("\n🧾 Event Log:\n")
		for _, event := range config.Events {
			fmt.Fprintf(&b, "day %-4d %-19s %s\n", event.Day(), event.Type(), describeEvent(event))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// describeEvent renders an event payload on one line
func describeEvent(event events.Event) string {
	switch data := event.Data().(type) {
	case events.DeliveryAdmitted:
		return fmt.Sprintf("%s provider=%q on_hand=%d", data.Delivery, data.Delivery.Provider, data.OnHand)
	case events.BreadConsumed:
		return fmt.Sprintf("qty=%d from day %d age=%d", data.Portion.Quantity, data.Portion.ArrivalDay, data.Portion.Age)
	case events.ShortfallRecorded:
		return fmt.Sprintf("unmet=%d of %d", data.Unmet, data.Requested)
	case events.WasteRecorded:
		return fmt.Sprintf("qty=%d", data.Quantity)
	default:
		return fmt.Sprintf("%v", data)
	}
}

// generateJSONOutput creates JSON output
func generateJSONOutput(w io.Writer, result *dto.SimulationResult, config Config) error {
	jsonData, err := json.MarshalIndent(newReportDocument(result, config), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	jsonData = append(jsonData, '\n')
	_, err = w.Write(jsonData)
	return err
}

// generateYAMLOutput creates YAML output
func generateYAMLOutput(w io.Writer, result *dto.SimulationResult, config Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newReportDocument(result, config)); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}

// generateCSVOutput writes metric,value rows, followed by the daily ledger
// when verbose and the event log when events are given. Sections are
// separated by an empty row.
func generateCSVOutput(w io.Writer, result *dto.SimulationResult, config Config) error {
	doc := newReportDocument(result, config)
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"metric", "value"},
		{"num_days", strconv.Itoa(doc.NumDays)},
		{"daily_consumption", strconv.FormatInt(doc.DailyConsumption, 10)},
		{"deliveries", doc.Deliveries},
		{"unscheduled_deliveries", strconv.Itoa(doc.UnscheduledDeliveries)},
		{"total_delivered", strconv.FormatInt(doc.TotalDelivered, 10)},
		{"total_consumed", strconv.FormatInt(doc.TotalConsumed, 10)},
		{"total_waste", strconv.FormatInt(doc.TotalWaste, 10)},
		{"shortfall_days", strconv.Itoa(doc.ShortfallDays)},
		{"shortfall_units", strconv.FormatInt(doc.ShortfallUnits, 10)},
		{"max_staleness_observed", strconv.Itoa(doc.MaxStalenessObserved)},
		{"stale_units_eaten", strconv.FormatInt(doc.StaleUnitsEaten, 10)},
		{"expired_units_eaten", strconv.FormatInt(doc.ExpiredUnitsEaten, 10)},
		{"waste_rate", doc.WasteRate},
		{"fill_rate", doc.FillRate},
		{"average_staleness", doc.AverageStaleness},
	}

	if len(doc.Days) > 0 {
		rows = append(rows, []string{})
		rows = append(rows, []string{"day", "admitted", "consumed", "shortfall", "on_hand", "oldest_age", "expired_eaten"})
		for _, day := range doc.Days {
			rows = append(rows, []string{
				strconv.Itoa(day.Day),
				strconv.FormatInt(day.Admitted, 10),
				strconv.FormatInt(day.Consumed, 10),
				strconv.FormatInt(day.Shortfall, 10),
				strconv.FormatInt(day.OnHand, 10),
				strconv.Itoa(day.OldestAge),
				strconv.FormatInt(day.Expired, 10),
			})
		}
	}

	if len(doc.Events) > 0 {
		rows = append(rows, []string{})
		rows = append(rows, []string{"event_day", "event_type", "detail"})
		for _, event := range doc.Events {
			rows = append(rows, []string{strconv.Itoa(event.Day), event.Type, event.Detail})
		}
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
