package output

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/emko/mpr/pkg/application/dto"
	"github.com/emko/mpr/pkg/domain/entities"
)

// GanttChart renders the planned schedule as an SVG timeline, one row per
// item in table order with one bar per planned phase.
type GanttChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
	StartTime    time.Time
	EndTime      time.Time
}

// phaseColors is the pastel palette used for phase bars, in phase order.
var phaseColors = [entities.NumPhases]string{
	"#A0C4FF", // procurement
	"#9BF6FF", // design
	"#FFADAD", // manufacturing
	"#FFD6A5", // inspection
	"#CAFFBF", // delivery
}

// NewGanttChart sizes a chart for the report's planned date range.
func NewGanttChart(report *dto.ProgressReport) *GanttChart {
	rows := chartItems(report.Items)
	if len(rows) == 0 {
		return &GanttChart{
			Width:        800,
			Height:       200,
			MarginLeft:   150,
			MarginTop:    50,
			MarginRight:  50,
			MarginBottom: 50,
			RowHeight:    25,
		}
	}

	// Time bounds from planned dates plus the contract delivery line.
	var startTime, endTime time.Time
	for _, item := range rows {
		for _, p := range entities.AllPhases {
			d := item.Phases[p]
			if d.PlanStart != nil && (startTime.IsZero() || d.PlanStart.Before(startTime)) {
				startTime = *d.PlanStart
			}
			if d.PlanEnd != nil && (endTime.IsZero() || d.PlanEnd.After(endTime)) {
				endTime = *d.PlanEnd
			}
		}
	}
	if startTime.IsZero() {
		startTime = report.StartDate
	}
	if endTime.IsZero() || endTime.Before(startTime) {
		endTime = startTime.AddDate(0, 1, 0)
	}
	if report.ContractDeliveryDate.After(endTime) {
		endTime = report.ContractDeliveryDate
	}

	// 10% padding around the time range.
	totalDuration := endTime.Sub(startTime)
	padding := time.Duration(float64(totalDuration) * 0.1)
	startTime = startTime.Add(-padding)
	endTime = endTime.Add(padding)

	rowHeight := 24
	height := len(rows)*rowHeight + 160

	return &GanttChart{
		Width:        1200,
		Height:       height,
		MarginLeft:   260,
		MarginTop:    60,
		MarginRight:  60,
		MarginBottom: 80,
		RowHeight:    rowHeight,
		StartTime:    startTime,
		EndTime:      endTime,
	}
}

// GenerateSVG creates the SVG document for the report.
func (gc *GanttChart) GenerateSVG(report *dto.ProgressReport) string {
	rows := chartItems(report.Items)
	if len(rows) == 0 {
		return gc.generateEmptyChart()
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, gc.Width, gc.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.item-label { font-family: Arial, sans-serif; font-size: 11px; fill: #333; }`)
	svg.WriteString(`.time-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.marker-line { stroke-width: 1.5; stroke-dasharray: 4 3; }`)
	svg.WriteString(`.phase-bar { stroke: #999; stroke-width: 0.5; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, gc.Width, gc.Height))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title" text-anchor="middle">%s - Planned Schedule</text>`,
		gc.Width/2, escapeXML(report.ProjectName)))

	gc.drawTimeAxis(&svg)
	gc.drawTimeGrid(&svg, len(rows))
	gc.drawItemRows(&svg, rows)
	gc.drawMarker(&svg, report.GeneratedAt, "#d62828", "Today", len(rows))
	gc.drawMarker(&svg, report.ContractDeliveryDate, "#003049", "Contract", len(rows))
	gc.drawLegend(&svg)

	svg.WriteString(`</svg>`)
	return svg.String()
}

// chartItems drops placeholder rows without a name.
func chartItems(items []entities.Item) []entities.Item {
	var out []entities.Item
	for _, item := range items {
		if item.Valid() {
			out = append(out, item)
		}
	}
	return out
}

func (gc *GanttChart) timeToX(t time.Time) int {
	chartWidth := gc.Width - gc.MarginLeft - gc.MarginRight
	totalDuration := gc.EndTime.Sub(gc.StartTime)
	offset := t.Sub(gc.StartTime)
	return gc.MarginLeft + int(float64(offset)/float64(totalDuration)*float64(chartWidth))
}

// drawTimeAxis draws the time axis labels
func (gc *GanttChart) drawTimeAxis(svg *strings.Builder) {
	days := int(math.Ceil(gc.EndTime.Sub(gc.StartTime).Hours() / 24))
	var interval time.Duration
	var labelFormat string

	if days <= 60 {
		interval = 7 * 24 * time.Hour // Weekly
		labelFormat = "Jan 2"
	} else {
		interval = 30 * 24 * time.Hour // Monthly
		labelFormat = "Jan 2006"
	}

	for t := gc.StartTime.Truncate(interval); t.Before(gc.EndTime); t = t.Add(interval) {
		x := gc.timeToX(t)
		if x >= gc.MarginLeft && x <= gc.Width-gc.MarginRight {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" text-anchor="middle">%s</text>`,
				x, gc.Height-gc.MarginBottom+15, t.Format(labelFormat)))
		}
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
		gc.MarginLeft, gc.Height-gc.MarginBottom, gc.Width-gc.MarginRight, gc.Height-gc.MarginBottom))
}

func (gc *GanttChart) drawTimeGrid(svg *strings.Builder, numRows int) {
	days := int(math.Ceil(gc.EndTime.Sub(gc.StartTime).Hours() / 24))
	var interval time.Duration
	if days <= 60 {
		interval = 7 * 24 * time.Hour
	} else {
		interval = 30 * 24 * time.Hour
	}

	gridBottom := gc.MarginTop + numRows*gc.RowHeight
	for t := gc.StartTime.Truncate(interval); t.Before(gc.EndTime); t = t.Add(interval) {
		x := gc.timeToX(t)
		if x >= gc.MarginLeft && x <= gc.Width-gc.MarginRight {
			svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
				x, gc.MarginTop, x, gridBottom))
		}
	}
}

// drawItemRows draws one labelled row per item, bars for each planned phase.
// Rows stay in table order so the chart matches the schedule table.
func (gc *GanttChart) drawItemRows(svg *strings.Builder, items []entities.Item) {
	for i, item := range items {
		y := gc.MarginTop + i*gc.RowHeight

		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="item-label" text-anchor="end">%s</text>`,
			gc.MarginLeft-10, y+gc.RowHeight/2+4, escapeXML(item.Name)))

		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			gc.MarginLeft, y+gc.RowHeight, gc.Width-gc.MarginRight, y+gc.RowHeight))

		for _, p := range entities.AllPhases {
			d := item.Phases[p]
			if d.PlanStart == nil || d.PlanEnd == nil {
				continue
			}
			gc.drawPhaseBar(svg, item.Name, p, *d.PlanStart, *d.PlanEnd, y)
		}
	}
}

func (gc *GanttChart) drawPhaseBar(svg *strings.Builder, name string, p entities.Phase, start, end time.Time, rowY int) {
	x := gc.timeToX(start)
	width := gc.timeToX(end) - x
	if width < 2 {
		width = 2 // Minimum width for visibility
	}

	barHeight := gc.RowHeight - 6
	barY := rowY + 3

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="phase-bar">`,
		x, barY, width, barHeight, phaseColors[p]))
	svg.WriteString(fmt.Sprintf(`<title>%s - %s: %s to %s</title>`,
		escapeXML(name), p, start.Format("2006-01-02"), end.Format("2006-01-02")))
	svg.WriteString(`</rect>`)
}

// drawMarker draws a labelled vertical reference line across the rows.
func (gc *GanttChart) drawMarker(svg *strings.Builder, t time.Time, color, label string, numRows int) {
	if t.IsZero() || t.Before(gc.StartTime) || t.After(gc.EndTime) {
		return
	}
	x := gc.timeToX(t)
	bottom := gc.MarginTop + numRows*gc.RowHeight
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="marker-line" stroke="%s"/>`,
		x, gc.MarginTop-10, x, bottom, color))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" fill="%s" text-anchor="middle">%s</text>`,
		x, gc.MarginTop-15, color, label))
}

// drawLegend draws a legend mapping colors to phases.
func (gc *GanttChart) drawLegend(svg *strings.Builder) {
	legendX := gc.Width - gc.MarginRight - 170
	legendY := gc.Height - gc.MarginBottom + 25

	for i, p := range entities.AllPhases {
		itemX := legendX - (len(entities.AllPhases)-1-i)*130
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="8" fill="%s" class="phase-bar"/>`,
			itemX, legendY, phaseColors[p]))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label">%s</text>`,
			itemX+18, legendY+7, p))
	}
}

func (gc *GanttChart) generateEmptyChart() string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
		<rect width="%d" height="%d" fill="white"/>
		<text x="%d" y="%d" class="title" text-anchor="middle">No Scheduled Items</text>
		<style>
			.title { font-family: Arial, sans-serif; font-size: 16px; fill: #666; }
		</style>
	</svg>`, gc.Width, gc.Height, gc.Width, gc.Height, gc.Width/2, gc.Height/2)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
