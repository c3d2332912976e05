package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emko/mpr/pkg/domain/entities"
)

// Terminal color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

// palette carries the lipgloss styles for one render pass. A disabled palette
// renders everything unstyled so output stays clean in pipes and logs.
type palette struct {
	header lipgloss.Style
	dim    lipgloss.Style
	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	bold   lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{header: plain, dim: plain, green: plain, yellow: plain, red: plain, bold: plain}
	}
	return palette{
		header: lipgloss.NewStyle().Foreground(colorHeader).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(colorDim),
		green:  lipgloss.NewStyle().Foreground(colorGreen),
		yellow: lipgloss.NewStyle().Foreground(colorYellow),
		red:    lipgloss.NewStyle().Foreground(colorRed),
		bold:   lipgloss.NewStyle().Bold(true),
	}
}

// sectionHeader renders an upper-cased section title with an underline.
func (p palette) sectionHeader(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", p.header.Render(upper), p.dim.Render(line))
}

// statusIndicator returns a colored status marker such as "● DELAYED".
func (p palette) statusIndicator(status entities.Status) string {
	switch status {
	case entities.Delayed:
		return p.red.Render("● DELAYED")
	case entities.Ahead:
		return p.green.Render("● AHEAD")
	default:
		return p.green.Render("● ON TRACK")
	}
}

// renderTable renders an aligned table with a header separator line. Column
// widths are measured with lipgloss.Width so styled cells align correctly.
func (p palette) renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(p.header.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(p.dim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
