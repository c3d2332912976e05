// Package csv reads and writes project directories: a schedule.csv item
// table plus a project.csv metadata record. Column names are a compatibility
// surface; files written by one version must round-trip through another.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/services/weighting"
)

const (
	// ScheduleFileName is the item table file inside a project directory.
	ScheduleFileName = "schedule.csv"
	// ProjectFileName is the project metadata file inside a project directory.
	ProjectFileName = "project.csv"

	dateLayout = "2006-01-02"
)

// baseColumns precede the twenty date columns in the schedule header.
var baseColumns = []string{
	"Item", "Amount", "ManufacturingWeeks", "Weight",
	"PlanPrev", "ActualPrev", "PlanCurr", "ActualCurr",
}

var projectColumns = []string{"ProjectName", "StartDate", "DeliveryDate"}

// ScheduleColumns returns the full schedule.csv header: the base columns
// followed by <Phase><Field> date columns in fixed phase order.
func ScheduleColumns() []string {
	cols := append([]string(nil), baseColumns...)
	for _, p := range entities.AllPhases {
		cols = append(cols,
			p.String()+"PlanStart",
			p.String()+"PlanEnd",
			p.String()+"ActualStart",
			p.String()+"ActualEnd",
		)
	}
	return cols
}

// Loader handles loading project data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProject loads a full project context from a project directory
// containing schedule.csv and project.csv.
func (l *Loader) LoadProject(dir string) (entities.ProjectContext, error) {
	pc, err := l.LoadProjectInfo(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return entities.ProjectContext{}, err
	}

	items, err := l.LoadSchedule(filepath.Join(dir, ScheduleFileName))
	if err != nil {
		return entities.ProjectContext{}, err
	}

	pc.Items = items
	return pc, nil
}

// LoadProjectInfo loads the project metadata record. Unparseable dates fall
// back to defaults (today, today + 40 weeks) rather than failing the import.
func (l *Loader) LoadProjectInfo(filename string) (entities.ProjectContext, error) {
	records, err := readCSV(filename)
	if err != nil {
		return entities.ProjectContext{}, err
	}

	if len(records) < 2 {
		return entities.ProjectContext{}, fmt.Errorf("project CSV must have header and one data row")
	}
	if !validateHeader(records[0], projectColumns) {
		return entities.ProjectContext{}, fmt.Errorf("project CSV header mismatch. Expected: %v, Got: %v",
			projectColumns, records[0])
	}

	record := records[1]
	pc := entities.NewProjectContext(strings.TrimSpace(record[0]), time.Now())
	pc.Items = nil
	if d := parseDate(record[1]); d != nil {
		pc.StartDate = *d
	}
	if d := parseDate(record[2]); d != nil {
		pc.ContractDeliveryDate = *d
	}
	return pc, nil
}

// LoadSchedule loads the item table. Cell-level malformation degrades to a
// safe default (zero for numbers, unset for dates); only structural problems
// fail the import.
func (l *Loader) LoadSchedule(filename string) ([]entities.Item, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, err
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("schedule CSV must have a header row")
	}

	expected := ScheduleColumns()
	if !validateHeader(records[0], expected) {
		return nil, fmt.Errorf("schedule CSV header mismatch. Expected: %v, Got: %v",
			expected, records[0])
	}

	var items []entities.Item
	for i, record := range records[1:] {
		if len(record) != len(expected) {
			return nil, fmt.Errorf("schedule CSV row %d: expected %d columns, got %d",
				i+2, len(expected), len(record))
		}
		items = append(items, parseItem(record))
	}

	return items, nil
}

func readCSV(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if !strings.EqualFold(strings.TrimSpace(actual[i]), col) {
			return false
		}
	}
	return true
}

func parseItem(record []string) entities.Item {
	item := entities.Item{
		Name:               strings.TrimSpace(record[0]),
		Amount:             weighting.CleanNumber(record[1]),
		ManufacturingWeeks: weighting.CleanNumber(record[2]).InexactFloat64(),
		WeightPercent:      weighting.CleanNumber(record[3]),
		PlanPrev:           weighting.CleanNumber(record[4]).InexactFloat64(),
		ActualPrev:         weighting.CleanNumber(record[5]).InexactFloat64(),
		PlanCurr:           weighting.CleanNumber(record[6]).InexactFloat64(),
		ActualCurr:         weighting.CleanNumber(record[7]).InexactFloat64(),
	}

	col := len(baseColumns)
	for _, p := range entities.AllPhases {
		d := item.Dates(p)
		d.PlanStart = parseDate(record[col])
		d.PlanEnd = parseDate(record[col+1])
		d.ActualStart = parseDate(record[col+2])
		d.ActualEnd = parseDate(record[col+3])
		col += 4
	}

	return item
}

// parseDate returns nil for empty or unparseable cells: an unreadable date
// means "not yet scheduled/occurred", never a failed import.
func parseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
