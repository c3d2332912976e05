// Package progress turns per-item phase dates into plan/actual completion
// percentages for the previous and current reporting periods, then rolls
// them up into the weighted project aggregate.
package progress

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Period is the calendar-month reporting window. Dates strictly before Start
// belong to the "previous" snapshot; planned dates up to and including End
// count toward the cumulative "current" target.
type Period struct {
	Start time.Time // first day of the month
	End   time.Time // last day of the month
}

// PeriodOf returns the reporting window for the month containing ref.
func PeriodOf(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return Period{Start: start, End: end}
}

// Aggregate holds the project-level rollup for one recompute pass.
type Aggregate struct {
	OverallPlan   float64
	OverallActual float64
	Status        entities.Status
}

// Compute sets the four per-item percentage fields and the monthly progress
// delta, then aggregates to the overall plan/actual percentages using the
// items' resolved weights. The input slice is not modified.
//
// Credit rule per phase: full phase weight once the phase has ended, half
// once it has started. For the "previous" snapshots only dates strictly
// before the period start count; the half-credit fallback looks at the start
// date alone, so a phase whose end falls inside the current month still earns
// half credit for last month if it started earlier.
func Compute(items []entities.Item, ref time.Time) ([]entities.Item, Aggregate) {
	period := PeriodOf(ref)
	out := entities.CloneItems(items)

	for i := range out {
		computeItem(&out[i], period)
	}

	return out, aggregate(out)
}

func computeItem(item *entities.Item, period Period) {
	var planPrev, actualPrev, planCurr, actualCurr float64

	for _, p := range entities.AllPhases {
		w := p.Weight()
		d := item.Dates(p)

		// Current actual: done counts in full, in-progress counts half.
		switch {
		case d.ActualEnd != nil:
			actualCurr += w
		case d.ActualStart != nil:
			actualCurr += w * 0.5
		}

		// Previous actual: same rule against the period boundary.
		switch {
		case d.ActualEnd != nil && d.ActualEnd.Before(period.Start):
			actualPrev += w
		case d.ActualStart != nil && d.ActualStart.Before(period.Start):
			actualPrev += w * 0.5
		}

		// Previous plan.
		switch {
		case d.PlanEnd != nil && d.PlanEnd.Before(period.Start):
			planPrev += w
		case d.PlanStart != nil && d.PlanStart.Before(period.Start):
			planPrev += w * 0.5
		}

		// Current plan: cumulative target through the end of this month,
		// inclusive.
		switch {
		case d.PlanEnd != nil && !d.PlanEnd.After(period.End):
			planCurr += w
		case d.PlanStart != nil && !d.PlanStart.After(period.End):
			planCurr += w * 0.5
		}
	}

	item.PlanPrev = planPrev
	item.ActualPrev = actualPrev
	item.PlanCurr = planCurr
	item.ActualCurr = actualCurr
	// May go negative when an actual date is retracted; the regression signal
	// is preserved, not clamped.
	item.MonthlyProgress = actualCurr - actualPrev
}

func aggregate(items []entities.Item) Aggregate {
	totalWeight := decimal.Zero
	planSum := decimal.Zero
	actualSum := decimal.Zero

	for _, item := range items {
		w := item.WeightPercent
		totalWeight = totalWeight.Add(w)
		planSum = planSum.Add(decimal.NewFromFloat(item.PlanCurr).Mul(w))
		actualSum = actualSum.Add(decimal.NewFromFloat(item.ActualCurr).Mul(w))
	}

	if totalWeight.IsZero() {
		return Aggregate{Status: entities.OnTrack}
	}

	agg := Aggregate{
		OverallPlan:   planSum.Div(totalWeight).InexactFloat64(),
		OverallActual: actualSum.Div(totalWeight).InexactFloat64(),
	}

	switch {
	case agg.OverallActual < agg.OverallPlan:
		agg.Status = entities.Delayed
	case agg.OverallActual > agg.OverallPlan:
		agg.Status = entities.Ahead
	default:
		agg.Status = entities.OnTrack
	}

	return agg
}
