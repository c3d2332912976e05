package services

import (
	"time"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/schedule"
)

// PlanningService derives the planned schedule for a project. Like every
// user action in this tool, planning is one full blocking pass over the
// whole item table; the result replaces the previous snapshot wholesale.
type PlanningService struct{}

// NewPlanningService creates a new planning service
func NewPlanningService() *PlanningService {
	return &PlanningService{}
}

// AutoPlan rewrites every item's planned phase dates from the project start
// date. Actual dates, amounts and weights survive untouched. Rows the
// scheduler could not process are reported as issues and keep their previous
// planned dates.
func (s *PlanningService) AutoPlan(pc entities.ProjectContext) (entities.ProjectContext, []dto.RowIssue) {
	pc = defaultStartDate(pc, time.Now())
	items, issues := schedule.Schedule(pc.Items, pc.StartDate)
	pc.Items = items
	return pc, toRowIssues(issues)
}

func toRowIssues(issues []schedule.RowIssue) []dto.RowIssue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]dto.RowIssue, len(issues))
	for i, issue := range issues {
		out[i] = dto.RowIssue{Row: issue.Row, Item: issue.Item, Reason: issue.Err.Error()}
	}
	return out
}

// defaultStartDate guards against a zero project start, which would schedule
// everything around year 1.
func defaultStartDate(pc entities.ProjectContext, now time.Time) entities.ProjectContext {
	if pc.StartDate.IsZero() {
		pc.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return pc
}
