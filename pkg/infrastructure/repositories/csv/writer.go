package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/natefinch/atomic"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Writer handles exporting project data to CSV files
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProject exports the full project context into a project directory.
// Both files are written atomically so a crash mid-export never leaves a
// half-written schedule on disk.
func (w *Writer) WriteProject(dir string, pc entities.ProjectContext) error {
	if err := w.WriteSchedule(filepath.Join(dir, ScheduleFileName), pc.Items); err != nil {
		return err
	}
	return w.WriteProjectInfo(filepath.Join(dir, ProjectFileName), pc)
}

// WriteSchedule exports the item table, computed fields included.
func (w *Writer) WriteSchedule(filename string, items []entities.Item) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(ScheduleColumns()); err != nil {
		return fmt.Errorf("failed to write schedule header: %w", err)
	}
	for i, item := range items {
		if err := cw.Write(itemRecord(item)); err != nil {
			return fmt.Errorf("failed to write schedule row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush schedule CSV: %w", err)
	}

	if err := atomic.WriteFile(filename, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// WriteProjectInfo exports the project metadata record.
func (w *Writer) WriteProjectInfo(filename string, pc entities.ProjectContext) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(projectColumns); err != nil {
		return fmt.Errorf("failed to write project header: %w", err)
	}
	record := []string{pc.Name, formatDate(&pc.StartDate), formatDate(&pc.ContractDeliveryDate)}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write project record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush project CSV: %w", err)
	}

	if err := atomic.WriteFile(filename, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func itemRecord(item entities.Item) []string {
	record := []string{
		item.Name,
		item.Amount.String(),
		formatFloat(item.ManufacturingWeeks),
		item.WeightPercent.String(),
		formatFloat(item.PlanPrev),
		formatFloat(item.ActualPrev),
		formatFloat(item.PlanCurr),
		formatFloat(item.ActualCurr),
	}

	for _, p := range entities.AllPhases {
		d := item.Phases[p]
		record = append(record,
			formatDate(d.PlanStart),
			formatDate(d.PlanEnd),
			formatDate(d.ActualStart),
			formatDate(d.ActualEnd),
		)
	}

	return record
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
