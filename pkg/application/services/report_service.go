package services

import (
	"fmt"
	"time"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/delay"
	"github.com/emko/mpr/pkg/domain/services/progress"
	"github.com/emko/mpr/pkg/domain/services/weighting"
)

// ReportService runs the full recompute pass over a project snapshot: weight
// resolution, progress calculation, then delay analysis. There is no
// incremental recomputation; every call derives the report from scratch so a
// failure can never leave a half-updated result behind.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildReport computes the complete progress report for the month containing
// asOf. The project snapshot itself is never mutated.
func (s *ReportService) BuildReport(pc entities.ProjectContext, asOf time.Time) (*dto.ProgressReport, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("reference date is required to place the reporting period")
	}
	if pc.ContractDeliveryDate.IsZero() {
		return nil, fmt.Errorf("project %q has no contract delivery date", pc.Name)
	}

	w := weighting.Resolve(pc.Items)
	items := weighting.Apply(pc.Items, w)

	items, agg := progress.Compute(items, asOf)
	alerts := delay.Analyze(items, pc.ContractDeliveryDate)

	period := progress.PeriodOf(asOf)
	return &dto.ProgressReport{
		ProjectName:          pc.Name,
		GeneratedAt:          asOf,
		StartDate:            pc.StartDate,
		ContractDeliveryDate: pc.ContractDeliveryDate,
		PeriodStart:          period.Start,
		PeriodEnd:            period.End,
		Items:                items,
		Weighting:            w.Strategy.String(),
		OverallPlan:          agg.OverallPlan,
		OverallActual:        agg.OverallActual,
		Status:               agg.Status,
		Alerts:               alerts,
	}, nil
}
