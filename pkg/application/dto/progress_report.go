package dto

import (
	"time"

	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/delay"
)

// RowIssue describes a non-fatal per-row failure surfaced to the user
// alongside the results of the rows that did succeed.
type RowIssue struct {
	Row    int    `json:"row"`
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// ProgressReport is the complete contract the core exposes to the
// presentation layer: the finalized item table with all computed fields, the
// aggregate metrics and the ordered alert sequence.
type ProgressReport struct {
	ProjectName          string    `json:"projectName"`
	GeneratedAt          time.Time `json:"generatedAt"`
	StartDate            time.Time `json:"startDate"`
	ContractDeliveryDate time.Time `json:"contractDeliveryDate"`
	PeriodStart          time.Time `json:"periodStart"`
	PeriodEnd            time.Time `json:"periodEnd"`

	Items     []entities.Item `json:"items"`
	Weighting string          `json:"weighting"`

	OverallPlan   float64         `json:"overallPlan"`
	OverallActual float64         `json:"overallActual"`
	Status        entities.Status `json:"status"`

	Alerts []delay.Alert `json:"alerts"`
	Issues []RowIssue    `json:"issues,omitempty"`
}

// AlertMessages returns the display strings of the alert sequence in
// emission order.
func (r *ProgressReport) AlertMessages() []string {
	return delay.Messages(r.Alerts)
}
