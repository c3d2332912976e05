package output

import (
	"fmt"
	"strings"

	"github.com/emko/mpr/pkg/application/dto"
)

// renderText builds the terminal report: summary metrics, row issues, delay
// alerts, then the per-item progress review table.
func renderText(report *dto.ProgressReport, p palette) string {
	var b strings.Builder

	b.WriteString(p.bold.Render(report.ProjectName))
	b.WriteString(p.dim.Render(fmt.Sprintf("  (period %s to %s)",
		report.PeriodStart.Format("2006-01-02"), report.PeriodEnd.Format("2006-01-02"))))
	b.WriteString("\n\n")

	b.WriteString(p.sectionHeader("Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall Plan:    %6.2f%%\n", report.OverallPlan))
	b.WriteString(fmt.Sprintf("Overall Actual:  %6.2f%%\n", report.OverallActual))
	b.WriteString(fmt.Sprintf("Status:          %s\n", p.statusIndicator(report.Status)))
	b.WriteString(fmt.Sprintf("Weighting:       %s\n", report.Weighting))
	b.WriteString(fmt.Sprintf("Contract Date:   %s\n", report.ContractDeliveryDate.Format("2006-01-02")))
	b.WriteString("\n")

	if len(report.Issues) > 0 {
		b.WriteString(p.sectionHeader("Skipped Rows"))
		b.WriteString("\n")
		for _, issue := range report.Issues {
			b.WriteString(p.yellow.Render(fmt.Sprintf("row %d (%s): %s", issue.Row, issue.Item, issue.Reason)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(report.Alerts) > 0 {
		b.WriteString(p.sectionHeader(fmt.Sprintf("Delay Alerts (%d)", len(report.Alerts))))
		b.WriteString("\n")
		for _, msg := range report.AlertMessages() {
			b.WriteString(p.red.Render("! "))
			b.WriteString(msg)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(p.sectionHeader("Progress Review"))
	b.WriteString("\n")
	b.WriteString(p.renderTable(
		[]string{"Item", "Weight %", "Prev Actual %", "Curr Actual %", "Monthly %", "Curr Plan %"},
		reviewRows(report, p),
	))

	return b.String()
}

func reviewRows(report *dto.ProgressReport, p palette) [][]string {
	rows := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		if !item.Valid() {
			continue
		}
		monthly := fmt.Sprintf("%.1f", item.MonthlyProgress)
		if item.MonthlyProgress < 0 {
			monthly = p.red.Render(monthly)
		}
		rows = append(rows, []string{
			item.Name,
			item.WeightPercent.StringFixed(2),
			fmt.Sprintf("%.1f", item.ActualPrev),
			fmt.Sprintf("%.1f", item.ActualCurr),
			monthly,
			fmt.Sprintf("%.1f", item.PlanCurr),
		})
	}
	return rows
}
