package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/emko/mpr/pkg/application/services"
	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/infrastructure/config"
	"github.com/emko/mpr/pkg/infrastructure/repositories/csv"
)

// InitCommand creates a fresh project directory from the built-in catalog.
type InitCommand struct {
	opts Config
}

// NewInitCommand creates a new init command with the given configuration
func NewInitCommand(opts Config) *InitCommand {
	return &InitCommand{opts: opts}
}

// Execute writes schedule.csv and project.csv for a new project. The default
// item table is auto-planned so the directory is immediately reportable.
func (c *InitCommand) Execute() error {
	cfg, sources, err := config.Load(c.opts.ProjectDir)
	if err != nil {
		return err
	}
	if c.opts.Verbose && sources.Global != "" {
		fmt.Printf("📄 Using global config: %s\n", sources.Global)
	}

	pc := entities.NewProjectContext(cfg.ProjectName, time.Now())
	if cfg.DeliveryLeadWeeks > 0 {
		pc.ContractDeliveryDate = pc.StartDate.AddDate(0, 0, cfg.DeliveryLeadWeeks*7)
	}
	applyCatalogOverrides(pc.Items, cfg.CatalogOverrides)

	planner := services.NewPlanningService()
	pc, issues := planner.AutoPlan(pc)
	printIssues(issues)

	if err := os.MkdirAll(c.opts.ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	writer := csv.NewWriter()
	if err := writer.WriteProject(c.opts.ProjectDir, pc); err != nil {
		return err
	}

	if c.opts.Verbose {
		fmt.Printf("✅ Initialized project %q with %d items in %s\n",
			pc.Name, len(pc.Items), c.opts.ProjectDir)
	}
	return nil
}
