package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// htmlRow is one pre-formatted line of the report tables.
type htmlRow struct {
	Name            string
	Weight          string
	PrevActual      string
	CurrActual      string
	MonthlyProgress string
	Regressed       bool
	CurrPlan        string
	PhaseDates      []string
}

// htmlData is the template model for the static HTML report.
type htmlData struct {
	ProjectName   string
	GeneratedAt   string
	PeriodStart   string
	PeriodEnd     string
	StartDate     string
	ContractDate  string
	OverallPlan   string
	OverallActual string
	Status        string
	StatusClass   string
	Weighting     string
	Alerts        []string
	Issues        []dto.RowIssue
	PhaseHeaders  []string
	Rows          []htmlRow
}

// GenerateHTML renders the report as a standalone HTML document.
func GenerateHTML(report *dto.ProgressReport) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildHTMLData(report)); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.String(), nil
}

func buildHTMLData(report *dto.ProgressReport) *htmlData {
	data := &htmlData{
		ProjectName:   report.ProjectName,
		GeneratedAt:   report.GeneratedAt.Format("2006-01-02"),
		PeriodStart:   report.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     report.PeriodEnd.Format("2006-01-02"),
		StartDate:     report.StartDate.Format("2006-01-02"),
		ContractDate:  report.ContractDeliveryDate.Format("2006-01-02"),
		OverallPlan:   fmt.Sprintf("%.2f", report.OverallPlan),
		OverallActual: fmt.Sprintf("%.2f", report.OverallActual),
		Status:        report.Status.String(),
		Weighting:     report.Weighting,
		Alerts:        report.AlertMessages(),
		Issues:        report.Issues,
	}

	switch report.Status {
	case entities.Delayed:
		data.StatusClass = "delayed"
	case entities.Ahead:
		data.StatusClass = "ahead"
	default:
		data.StatusClass = "ontrack"
	}

	for _, p := range entities.AllPhases {
		data.PhaseHeaders = append(data.PhaseHeaders, p.String())
	}

	for _, item := range report.Items {
		if !item.Valid() {
			continue
		}
		row := htmlRow{
			Name:            item.Name,
			Weight:          item.WeightPercent.StringFixed(2),
			PrevActual:      fmt.Sprintf("%.1f", item.ActualPrev),
			CurrActual:      fmt.Sprintf("%.1f", item.ActualCurr),
			MonthlyProgress: fmt.Sprintf("%.1f", item.MonthlyProgress),
			Regressed:       item.MonthlyProgress < 0,
			CurrPlan:        fmt.Sprintf("%.1f", item.PlanCurr),
		}
		for _, p := range entities.AllPhases {
			row.PhaseDates = append(row.PhaseDates, phaseSpan(item.Phases[p]))
		}
		data.Rows = append(data.Rows, row)
	}

	return data
}

// phaseSpan formats a planned phase window like "2026-01-05 to 2026-05-04".
func phaseSpan(d entities.PhaseDates) string {
	format := func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "?"
		}
		return t.Format("2006-01-02")
	}
	if d.PlanStart == nil && d.PlanEnd == nil {
		return "-"
	}
	return format(d.PlanStart) + " to " + format(d.PlanEnd)
}
