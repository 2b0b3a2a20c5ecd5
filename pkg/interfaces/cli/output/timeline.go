package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/breadsim/pkg/application/dto"
	"github.com/vsinha/breadsim/pkg/domain/entities"
)

// StockTimeline renders available stock per day as horizontal bars
type StockTimeline struct {
	Width int
	rows  []timelineRow
	peak  entities.Quantity
}

type timelineRow struct {
	day       entities.Day
	available entities.Quantity
	shortfall entities.Quantity
}

// NewStockTimeline creates a timeline for result. Available stock is what
// the ledger held when the day's consumption was requested.
func NewStockTimeline(result *dto.SimulationResult) *StockTimeline {
	timeline := &StockTimeline{Width: 40}
	for _, record := range result.Days {
		available := record.OnHand + record.Consumed
		if available > timeline.peak {
			timeline.peak = available
		}
		timeline.rows = append(timeline.rows, timelineRow{
			day:       record.Day,
			available: available,
			shortfall: record.Shortfall,
		})
	}
	return timeline
}

// barLength scales qty to the timeline width, rounding up so that any
// stock at all is visible
func (t *StockTimeline) barLength(qty entities.Quantity) int {
	if t.peak == 0 || qty <= 0 {
		return 0
	}
	return int((int64(qty)*int64(t.Width) + int64(t.peak) - 1) / int64(t.peak))
}

// Render writes one line per day
func (t *StockTimeline) Render(w io.Writer) {
	for _, row := range t.rows {
		bar := strings.Repeat("#", t.barLength(row.available))
		line := fmt.Sprintf("%4d | %-*s %d", row.day, t.Width, bar, row.available)
		if row.shortfall > 0 {
			line += fmt.Sprintf("  short %d", row.shortfall)
		}
		fmt.Fprintln(w, line)
	}
}
