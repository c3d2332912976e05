package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emko/mpr/pkg/domain/entities"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testProject() entities.ProjectContext {
	return entities.ProjectContext{
		Name:                 "SCR Package",
		StartDate:            date(2026, 1, 5),
		ContractDeliveryDate: date(2026, 10, 12),
		Items: []entities.Item{
			{Name: "Catalyst", ManufacturingWeeks: 54},
			{Name: "Eye Shower", ManufacturingWeeks: 8},
		},
	}
}

func TestAutoPlanSchedulesEveryItem(t *testing.T) {
	pc := testProject()

	planned, issues := NewPlanningService().AutoPlan(pc)
	require.Empty(t, issues)

	for _, item := range planned.Items {
		proc := item.Phases[entities.Procurement]
		require.NotNil(t, proc.PlanStart, "item %s", item.Name)
		assert.True(t, proc.PlanStart.Equal(date(2026, 1, 5)))
	}
}

func TestAutoPlanCollectsRowIssues(t *testing.T) {
	pc := testProject()
	pc.Items[1].ManufacturingWeeks = -3

	planned, issues := NewPlanningService().AutoPlan(pc)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Row)
	assert.Equal(t, "Eye Shower", issues[0].Item)
	assert.Contains(t, issues[0].Reason, "invalid manufacturing duration")

	// The good row is still planned.
	assert.NotNil(t, planned.Items[0].Phases[entities.Design].PlanEnd)
}

func TestBuildReportEndToEnd(t *testing.T) {
	pc := testProject()
	planned, issues := NewPlanningService().AutoPlan(pc)
	require.Empty(t, issues)

	// Procurement for the Catalyst is underway in January.
	started := date(2026, 1, 10)
	planned.Items[0].Phases[entities.Procurement].ActualStart = &started

	report, err := NewReportService().BuildReport(planned, date(2026, 1, 15))
	require.NoError(t, err)

	assert.Equal(t, "SCR Package", report.ProjectName)
	assert.True(t, report.PeriodStart.Equal(date(2026, 1, 1)))
	assert.True(t, report.PeriodEnd.Equal(date(2026, 1, 31)))

	// No amounts, no manual weights: equal split across two items.
	assert.Equal(t, "EqualSplit", report.Weighting)

	// Plan per item in January: procurement done (10) + design started (10).
	assert.InDelta(t, 20.0, report.OverallPlan, 0.001)
	// Actual: one item at half procurement credit, weighted 50%.
	assert.InDelta(t, 2.5, report.OverallActual, 0.001)
	assert.Equal(t, entities.Delayed, report.Status)

	// Delivery lands well beyond the 40-week contract date for the catalyst.
	require.NotEmpty(t, report.Alerts)
	assert.Contains(t, report.AlertMessages()[0], "exceeds contract date")
}

func TestBuildReportRequiresReferenceDate(t *testing.T) {
	_, err := NewReportService().BuildReport(testProject(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference date")
}

func TestBuildReportRequiresContractDate(t *testing.T) {
	pc := testProject()
	pc.ContractDeliveryDate = time.Time{}

	_, err := NewReportService().BuildReport(pc, date(2026, 1, 15))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contract delivery date")
}

func TestBuildReportDoesNotMutateSnapshot(t *testing.T) {
	pc := testProject()
	planned, _ := NewPlanningService().AutoPlan(pc)

	_, err := NewReportService().BuildReport(planned, date(2026, 1, 15))
	require.NoError(t, err)

	assert.True(t, planned.Items[0].WeightPercent.IsZero(),
		"weights must be resolved on a copy, not the snapshot")
	assert.Zero(t, planned.Items[0].PlanCurr)
}
