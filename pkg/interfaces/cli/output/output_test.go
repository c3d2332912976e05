package output

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/delay"
)

func testReport() *dto.ProgressReport {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	procEnd := start.AddDate(0, 0, 15)
	return &dto.ProgressReport{
		ProjectName:          "SCR Package",
		GeneratedAt:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartDate:            start,
		ContractDeliveryDate: start.AddDate(0, 0, 280),
		PeriodStart:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:            time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []entities.Item{
			{
				Name:            "Catalyst",
				WeightPercent:   decimal.NewFromInt(60),
				ActualPrev:      5,
				ActualCurr:      10,
				MonthlyProgress: 5,
				PlanCurr:        30,
				Phases: [entities.NumPhases]entities.PhaseDates{
					entities.Procurement: {PlanStart: &start, PlanEnd: &procEnd},
				},
			},
			{Name: "  "}, // placeholder row, must be dropped everywhere
		},
		Weighting:     "AmountBased",
		OverallPlan:   30,
		OverallActual: 10,
		Status:        entities.Delayed,
		Alerts: []delay.Alert{{
			Kind:    delay.ContractOverrun,
			Item:    "Catalyst",
			Message: "Catalyst - planned delivery 2026-12-01 exceeds contract date 2026-10-12 by 50 days",
		}},
		Issues: []dto.RowIssue{{Row: 3, Item: "Cable", Reason: "invalid manufacturing duration"}},
	}
}

func TestRenderTextPlain(t *testing.T) {
	text := renderText(testReport(), newPalette(false))

	for _, want := range []string{
		"SCR Package",
		"SUMMARY",
		"Overall Plan:     30.00%",
		"Overall Actual:   10.00%",
		"● DELAYED",
		"DELAY ALERTS (1)",
		"exceeds contract date",
		"SKIPPED ROWS",
		"row 3 (Cable): invalid manufacturing duration",
		"PROGRESS REVIEW",
		"Catalyst",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q\n%s", want, text)
		}
	}

	if strings.Contains(text, "\x1b[") {
		t.Error("plain palette must not emit ANSI escapes")
	}
}

func TestRenderTableAlignment(t *testing.T) {
	p := newPalette(false)
	table := p.renderTable([]string{"A", "Long Header"}, [][]string{{"x", "y"}})

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header, separator, row", len(lines))
	}
	if !strings.HasPrefix(lines[1], "─") {
		t.Errorf("separator line = %q", lines[1])
	}
}

func TestGenerateSVG(t *testing.T) {
	report := testReport()
	svg := NewGanttChart(report).GenerateSVG(report)

	for _, want := range []string{
		"<svg",
		"SCR Package - Planned Schedule",
		"Catalyst",
		"#A0C4FF", // procurement bar color
		">Today<",
		">Contract<",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestGenerateSVGEmpty(t *testing.T) {
	report := &dto.ProgressReport{ProjectName: "Empty"}
	svg := NewGanttChart(report).GenerateSVG(report)
	if !strings.Contains(svg, "No Scheduled Items") {
		t.Errorf("empty chart not rendered:\n%s", svg)
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(testReport())
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	for _, want := range []string{
		"<h1>SCR Package</h1>",
		"Delayed",
		"exceeds contract date",
		"row 3 (Cable)",
		"Catalyst",
		"2026-01-05 to 2026-01-20",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}

	// The placeholder row must not appear as a table row.
	if strings.Count(html, "<tr>") != 4 { // 2 headers + 1 row in each table
		t.Errorf("unexpected table rows:\n%s", html)
	}
}
