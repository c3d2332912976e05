// Package delay flags schedule slippage per phase and contract-delivery
// overruns, and suggests how to compress the remaining schedule.
package delay

import (
	"fmt"
	"strings"
	"time"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Kind distinguishes the two alert families.
type Kind int

const (
	// PhaseSlip means a phase finished later than planned.
	PhaseSlip Kind = iota
	// ContractOverrun means the planned delivery end exceeds the contractual
	// delivery date.
	ContractOverrun
)

func (k Kind) String() string {
	switch k {
	case PhaseSlip:
		return "PhaseSlip"
	case ContractOverrun:
		return "ContractOverrun"
	default:
		return "Unknown"
	}
}

// MarshalText makes Kind render as its name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Alert is one human-readable schedule warning.
type Alert struct {
	Kind      Kind
	Item      string
	Phase     entities.Phase // meaningful for PhaseSlip only
	DelayDays int
	Message   string
}

// minDesignDays is the compression floor for the design phase, roughly one
// month of engineering that cannot be cut.
const minDesignDays = 30

// Analyze compares planned against actual phase ends and the planned delivery
// against the contract date. It never mutates items; alerts are emitted in
// table order so repeated runs over the same table produce the same sequence.
func Analyze(items []entities.Item, contractDelivery time.Time) []Alert {
	contract := midnight(contractDelivery)

	var alerts []Alert
	for _, item := range items {
		if !item.Valid() {
			// Placeholder row; skip it and keep analyzing the rest.
			continue
		}
		alerts = append(alerts, phaseSlips(item)...)
		if a, ok := contractOverrun(item, contract); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// phaseSlips flags every phase whose actual end landed after its planned end.
func phaseSlips(item entities.Item) []Alert {
	var alerts []Alert
	for _, p := range entities.AllPhases {
		d := item.Phases[p]
		if d.PlanEnd == nil || d.ActualEnd == nil {
			continue
		}
		if !d.ActualEnd.After(*d.PlanEnd) {
			continue
		}
		days := daysBetween(*d.PlanEnd, *d.ActualEnd)
		alerts = append(alerts, Alert{
			Kind:      PhaseSlip,
			Item:      item.Name,
			Phase:     p,
			DelayDays: days,
			Message: fmt.Sprintf("%s - %s: %d days behind schedule (planned %s, actual %s)",
				item.Name, p, days, formatDate(*d.PlanEnd), formatDate(*d.ActualEnd)),
		})
	}
	return alerts
}

// contractOverrun checks the final planned delivery against the contract date
// and, when it slips, proposes where to recover the days: first squeeze
// design down to its floor, then put whatever remains on manufacturing.
// Design and manufacturing are the only compressible phases.
func contractOverrun(item entities.Item, contract time.Time) (Alert, bool) {
	planEnd := item.Phases[entities.Delivery].PlanEnd
	if planEnd == nil || !planEnd.After(contract) {
		return Alert{}, false
	}

	delayDays := daysBetween(contract, *planEnd)
	msg := fmt.Sprintf("%s - planned delivery %s exceeds contract date %s by %d days",
		item.Name, formatDate(*planEnd), formatDate(contract), delayDays)

	var suggestions []string
	remaining := delayDays

	design := item.Phases[entities.Design]
	if design.PlanStart != nil && design.PlanEnd != nil && design.PlanEnd.After(*design.PlanStart) {
		designDays := daysBetween(*design.PlanStart, *design.PlanEnd)
		reduceable := designDays - minDesignDays
		if reduceable > 0 {
			reduce := min(remaining, reduceable)
			suggestions = append(suggestions,
				fmt.Sprintf("cut design duration by %d days (current %d -> recommended %d)",
					reduce, designDays, designDays-reduce))
			remaining -= reduce
		}
	}

	if remaining > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("cut manufacturing duration by %d days", remaining))
	}

	if len(suggestions) > 0 {
		msg += " | suggestion: " + strings.Join(suggestions, ", ")
	}

	return Alert{
		Kind:      ContractOverrun,
		Item:      item.Name,
		Phase:     entities.Delivery,
		DelayDays: delayDays,
		Message:   msg,
	}, true
}

// Messages flattens alerts to their display strings, preserving order.
func Messages(alerts []Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.Message
	}
	return out
}

func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
