package entities

import "time"

// Phase identifies one of the five sequential work stages tracked per item.
type Phase int

const (
	Procurement Phase = iota
	Design
	Manufacturing
	Inspection
	Delivery
)

// NumPhases is the number of tracked phases.
const NumPhases = 5

// AllPhases lists the phases in schedule order. Alert emission and column
// layout both follow this order.
var AllPhases = [NumPhases]Phase{Procurement, Design, Manufacturing, Inspection, Delivery}

// String method for Phase enum
func (p Phase) String() string {
	switch p {
	case Procurement:
		return "Procurement"
	case Design:
		return "Design"
	case Manufacturing:
		return "Manufacturing"
	case Inspection:
		return "Inspection"
	case Delivery:
		return "Delivery"
	default:
		return "Unknown"
	}
}

// MarshalText makes Phase render as its name in JSON output.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Weight returns the phase's share of overall item progress, in percent.
// The five weights sum to 100.
func (p Phase) Weight() float64 {
	switch p {
	case Procurement:
		return 10.0
	case Design:
		return 20.0
	case Manufacturing:
		return 40.0
	case Inspection:
		return 25.0
	case Delivery:
		return 5.0
	default:
		return 0.0
	}
}

// PhaseDates holds the planned and actual date pair for one phase of one item.
// A nil date means "not yet scheduled" for planned fields and "not yet
// occurred" for actual fields. When both ends of a pair are present, end is
// expected to be on or after start; duration math assumes it but does not
// enforce it.
type PhaseDates struct {
	PlanStart   *time.Time
	PlanEnd     *time.Time
	ActualStart *time.Time
	ActualEnd   *time.Time
}
