package entities

import "time"

// DefaultDeliveryLeadWeeks is the default contract lead time from project
// start when no delivery date has been agreed yet.
const DefaultDeliveryLeadWeeks = 40

// ProjectContext is the per-session project state: identity, the two
// contractual dates and the live item table. It is created once at session
// start, replaced wholesale on import and persisted only via explicit export.
type ProjectContext struct {
	Name                 string
	StartDate            time.Time
	ContractDeliveryDate time.Time
	Items                []Item
}

// NewProjectContext creates a project initialized to defaults: the built-in
// equipment catalog, start = today and delivery = today + 40 weeks.
func NewProjectContext(name string, today time.Time) ProjectContext {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return ProjectContext{
		Name:                 name,
		StartDate:            day,
		ContractDeliveryDate: day.AddDate(0, 0, DefaultDeliveryLeadWeeks*7),
		Items:                DefaultItems(),
	}
}

// Status classifies overall actual progress against the plan.
type Status int

const (
	OnTrack Status = iota
	Delayed
	Ahead
)

// String method for Status enum
func (s Status) String() string {
	switch s {
	case OnTrack:
		return "On Track"
	case Delayed:
		return "Delayed"
	case Ahead:
		return "Ahead"
	default:
		return "Unknown"
	}
}

// MarshalText makes Status render as its display string in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
