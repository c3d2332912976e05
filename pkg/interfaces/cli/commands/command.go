// Package commands implements the init/plan/report command logic behind the
// CLI. Each command is one full pass: load the project directory, run the
// relevant services over an in-memory snapshot, write results back out.
package commands

import (
	"fmt"
	"time"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
)

// Config holds configuration shared by the commands.
type Config struct {
	ProjectDir string
	Format     string
	OutputDir  string
	AsOf       string
	Verbose    bool
	NoColor    bool
}

// parseAsOf resolves the reporting reference date; empty means today.
func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q (expected YYYY-MM-DD): %w", raw, err)
	}
	return t, nil
}

// hasPlannedDates reports whether any item carries a planned date at all.
func hasPlannedDates(items []entities.Item) bool {
	for _, item := range items {
		for _, p := range entities.AllPhases {
			d := item.Phases[p]
			if d.PlanStart != nil || d.PlanEnd != nil {
				return true
			}
		}
	}
	return false
}

// applyCatalogOverrides replaces manufacturing weeks for items named in the
// config overrides.
func applyCatalogOverrides(items []entities.Item, overrides map[string]float64) {
	if len(overrides) == 0 {
		return
	}
	for i := range items {
		if weeks, ok := overrides[items[i].Name]; ok {
			items[i].ManufacturingWeeks = weeks
		}
	}
}

func printIssues(issues []dto.RowIssue) {
	for _, issue := range issues {
		fmt.Printf("⚠️  Skipped row %d (%s): %s\n", issue.Row, issue.Item, issue.Reason)
	}
}
