package commands

import (
	"fmt"

	"github.com/emko/mpr/pkg/application/services"
	"github.com/emko/mpr/pkg/infrastructure/repositories/csv"
	"github.com/emko/mpr/pkg/infrastructure/repositories/memory"
)

// PlanCommand reruns the auto-scheduler over an existing project directory.
type PlanCommand struct {
	opts Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(opts Config) *PlanCommand {
	return &PlanCommand{opts: opts}
}

// Execute loads the project, rewrites every planned phase date from the
// project start date and exports the result back to the same directory.
func (c *PlanCommand) Execute() error {
	loader := csv.NewLoader()
	pc, err := loader.LoadProject(c.opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("error loading project: %w", err)
	}

	if c.opts.Verbose {
		fmt.Printf("📂 Loaded project %q (%d items) from %s\n", pc.Name, len(pc.Items), c.opts.ProjectDir)
	}

	repo := memory.NewProjectRepository(pc)

	planner := services.NewPlanningService()
	planned, issues := planner.AutoPlan(repo.Current())
	repo.Replace(planned)
	printIssues(issues)

	writer := csv.NewWriter()
	if err := writer.WriteProject(c.opts.ProjectDir, repo.Current()); err != nil {
		return err
	}

	if c.opts.Verbose {
		fmt.Printf("✅ Planned %d items from %s\n", len(planned.Items), planned.StartDate.Format("2006-01-02"))
	}
	return nil
}
