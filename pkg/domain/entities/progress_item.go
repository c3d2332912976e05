package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one row of the tracked schedule: a piece of plant equipment with a
// cost amount, a manufacturing duration and a date pair per phase. Progress
// percentage fields are derived on every recompute pass and are never the
// source of truth.
type Item struct {
	Name               string
	Amount             decimal.Decimal
	ManufacturingWeeks float64
	WeightPercent      decimal.Decimal

	// Derived completion percentages for the reporting window.
	PlanPrev        float64
	ActualPrev      float64
	PlanCurr        float64
	ActualCurr      float64
	MonthlyProgress float64

	Phases [NumPhases]PhaseDates
}

// Valid reports whether the row represents a real item. Imported sheets may
// carry blank placeholder rows; those are ignored by the analyzers.
func (it Item) Valid() bool {
	return strings.TrimSpace(it.Name) != ""
}

// Dates returns the date pair for the given phase.
func (it *Item) Dates(p Phase) *PhaseDates {
	return &it.Phases[p]
}

// CloneItems returns a row-order-preserving copy of the item table. Phase
// dates are immutable once set, so the pointers themselves are shared.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
