// Package cli wires the cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/emko/mpr/pkg/interfaces/cli/commands"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mpr",
		Short:         "Monthly progress reporting for equipment procurement projects",
		Long:          "mpr tracks per-item schedules across procurement, design, manufacturing,\ninspection and delivery phases, and reports weighted monthly progress\nwith delay alerts against the contract delivery date.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newReportCmd())

	return root
}

func newInitCmd() *cobra.Command {
	var opts commands.Config

	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Create a new project directory from the built-in item catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectDir = args[0]
			return commands.NewInitCommand(opts).Execute()
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	return cmd
}

func newPlanCmd() *cobra.Command {
	var opts commands.Config

	cmd := &cobra.Command{
		Use:   "plan <dir>",
		Short: "Rewrite all planned phase dates from the project start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectDir = args[0]
			return commands.NewPlanCommand(opts).Execute()
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	return cmd
}

func newReportCmd() *cobra.Command {
	var opts commands.Config

	cmd := &cobra.Command{
		Use:   "report <dir>",
		Short: "Compute and emit the monthly progress report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ProjectDir = args[0]
			return commands.NewReportCommand(opts).Execute()
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: text, json or csv (default from config)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "directory for report artifacts (report.html, gantt.svg)")
	cmd.Flags().StringVar(&opts.AsOf, "as-of", "", "reference date YYYY-MM-DD for the reporting month (default today)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "disable colored terminal output")

	return cmd
}
