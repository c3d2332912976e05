package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/emko/mpr/pkg/application/dto"
	csvrepo "github.com/emko/mpr/pkg/infrastructure/repositories/csv"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	NoColor   bool
}

// Generate emits the report in the configured format. When an output
// directory is set the HTML report and Gantt chart artifacts are written
// alongside the primary format.
func Generate(report *dto.ProgressReport, config Config) error {
	var err error
	switch config.Format {
	case "text":
		err = generateTextOutput(report, config)
	case "json":
		err = generateJSONOutput(report, config)
	case "csv":
		err = generateCSVOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
	if err != nil {
		return err
	}

	if config.OutputDir != "" {
		return writeArtifacts(report, config)
	}
	return nil
}

// generateTextOutput renders the human-readable report to stdout.
func generateTextOutput(report *dto.ProgressReport, config Config) error {
	color := !config.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Print(renderText(report, newPalette(color)))
	return nil
}

// generateJSONOutput emits the full report as indented JSON.
func generateJSONOutput(report *dto.ProgressReport, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	if config.Verbose {
		fmt.Printf("JSON report saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the computed item table in the schedule schema.
func generateCSVOutput(report *dto.ProgressReport, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "schedule_computed.csv")
	writer := csvrepo.NewWriter()
	if err := writer.WriteSchedule(filename, report.Items); err != nil {
		return fmt.Errorf("failed to write computed schedule CSV: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Computed schedule saved to: %s\n", filename)
	}
	return nil
}

// writeArtifacts generates the Gantt chart and HTML report files.
func writeArtifacts(report *dto.ProgressReport, config Config) error {
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	chart := NewGanttChart(report)
	svgFile := filepath.Join(config.OutputDir, "gantt.svg")
	if err := os.WriteFile(svgFile, []byte(chart.GenerateSVG(report)), 0644); err != nil {
		return fmt.Errorf("failed to write Gantt chart: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Gantt chart saved to: %s\n", svgFile)
	}

	html, err := GenerateHTML(report)
	if err != nil {
		return fmt.Errorf("failed to generate HTML report: %w", err)
	}
	htmlFile := filepath.Join(config.OutputDir, "report.html")
	if err := os.WriteFile(htmlFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	if config.Verbose {
		fmt.Printf("HTML report saved to: %s\n", htmlFile)
	}

	return nil
}
