package commands

import (
	"fmt"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/application/services"
	"github.com/emko/mpr/pkg/infrastructure/config"
	"github.com/emko/mpr/pkg/infrastructure/repositories/csv"
	"github.com/emko/mpr/pkg/infrastructure/repositories/memory"
	"github.com/emko/mpr/pkg/interfaces/cli/output"
)

// ReportCommand runs the full recompute pass and emits the progress report.
type ReportCommand struct {
	opts Config
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(opts Config) *ReportCommand {
	return &ReportCommand{opts: opts}
}

// Execute loads the project, resolves weights, computes progress and delay
// alerts for the reporting month, and emits the report in the configured
// format. An error anywhere emits nothing; there is no partial report.
func (c *ReportCommand) Execute() error {
	cfg, _, err := config.Load(c.opts.ProjectDir)
	if err != nil {
		return err
	}

	// Flags win over config files.
	format := c.opts.Format
	if format == "" {
		format = cfg.Format
	}
	outputDir := c.opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	noColor := c.opts.NoColor || cfg.NoColor

	asOf, err := parseAsOf(c.opts.AsOf)
	if err != nil {
		return err
	}

	loader := csv.NewLoader()
	pc, err := loader.LoadProject(c.opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("error loading project: %w", err)
	}

	if c.opts.Verbose {
		fmt.Printf("📂 Loaded project %q (%d items) from %s\n", pc.Name, len(pc.Items), c.opts.ProjectDir)
	}

	repo := memory.NewProjectRepository(pc)

	// A directory that was never planned gets a schedule on the fly, so a
	// report is always possible right after import.
	var issues []dto.RowIssue
	if !hasPlannedDates(repo.Current().Items) {
		if c.opts.Verbose {
			fmt.Println("📅 No planned dates found, running auto-scheduler...")
		}
		planner := services.NewPlanningService()
		planned, planIssues := planner.AutoPlan(repo.Current())
		repo.Replace(planned)
		issues = planIssues
	}

	reporter := services.NewReportService()
	report, err := reporter.BuildReport(repo.Current(), asOf)
	if err != nil {
		return fmt.Errorf("error building report: %w", err)
	}
	report.Issues = issues

	outputConfig := output.Config{
		Format:    format,
		OutputDir: outputDir,
		Verbose:   c.opts.Verbose,
		NoColor:   noColor,
	}
	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}
