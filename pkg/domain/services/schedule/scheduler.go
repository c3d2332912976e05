// Package schedule derives planned phase dates for every item from a single
// project start date using fixed phase offsets and durations.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Fixed phase durations and inter-phase lags, in days.
const (
	procurementDays = 15
	designLagDays   = 3
	designDays      = 120
	mfgLagDays      = 1
	inspLagDays     = 1
	inspectionDays  = 14
	deliveryLagDays = 7
	deliveryDays    = 7
)

// RowIssue records a non-fatal per-row scheduling failure. The offending row
// keeps its previous planned dates; the rest of the batch proceeds.
type RowIssue struct {
	Row  int
	Item string
	Err  error
}

func (ri RowIssue) String() string {
	return fmt.Sprintf("row %d (%s): %v", ri.Row, ri.Item, ri.Err)
}

// Schedule derives planned start/end dates for all five phases of every item
// from the project start date. Items are scheduled independently; no
// cross-item resource contention is modeled. Only planned fields are written;
// actual dates and weights are never touched. The input slice is not
// modified.
func Schedule(items []entities.Item, start time.Time) ([]entities.Item, []RowIssue) {
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	out := entities.CloneItems(items)
	var issues []RowIssue

	for i := range out {
		if err := scheduleItem(&out[i], base); err != nil {
			issues = append(issues, RowIssue{Row: i, Item: out[i].Name, Err: err})
			// Restore the row untouched.
			out[i].Phases = items[i].Phases
		}
	}

	return out, issues
}

func scheduleItem(item *entities.Item, base time.Time) error {
	weeks := item.ManufacturingWeeks
	if math.IsNaN(weeks) || math.IsInf(weeks, 0) || weeks < 0 {
		return fmt.Errorf("invalid manufacturing duration: %v weeks", weeks)
	}

	// 1. Procurement starts on the project start date.
	procStart := base
	procEnd := procStart.AddDate(0, 0, procurementDays)
	setPlan(item, entities.Procurement, procStart, procEnd)

	// 2. Design follows procurement after a short handover.
	designStart := procEnd.AddDate(0, 0, designLagDays)
	designEnd := designStart.AddDate(0, 0, designDays)
	setPlan(item, entities.Design, designStart, designEnd)

	// 3. Manufacturing only exists for items with a positive duration.
	// Zero-duration items (bulk material, services) break the chain here and
	// inspection hangs off design instead.
	inspBase := designEnd
	if weeks > 0 {
		mfgStart := designEnd.AddDate(0, 0, mfgLagDays)
		mfgEnd := mfgStart.AddDate(0, 0, int(weeks*7))
		setPlan(item, entities.Manufacturing, mfgStart, mfgEnd)
		inspBase = mfgEnd
	} else {
		clearPlan(item, entities.Manufacturing)
	}

	// 4. Inspection.
	inspStart := inspBase.AddDate(0, 0, inspLagDays)
	inspEnd := inspStart.AddDate(0, 0, inspectionDays)
	setPlan(item, entities.Inspection, inspStart, inspEnd)

	// 5. Delivery, including transport lead time.
	delStart := inspEnd.AddDate(0, 0, deliveryLagDays)
	delEnd := delStart.AddDate(0, 0, deliveryDays)
	setPlan(item, entities.Delivery, delStart, delEnd)

	return nil
}

func setPlan(item *entities.Item, p entities.Phase, start, end time.Time) {
	item.Phases[p].PlanStart = &start
	item.Phases[p].PlanEnd = &end
}

func clearPlan(item *entities.Item, p entities.Phase) {
	item.Phases[p].PlanStart = nil
	item.Phases[p].PlanEnd = nil
}
