package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable lays rows out under bold headers and a dim rule. Widths are
// measured on visible cells so styled text lines up; short rows are padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row[:min(len(row), len(widths))] {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow(&b, widths, headers, StyleHeader.Render)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	writeRow(&b, widths, rule, StyleDim.Render)

	for _, row := range rows {
		writeRow(&b, widths, row, nil)
	}
	return b.String()
}

func writeRow(b *strings.Builder, widths []int, cells []string, style func(...string) string) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if style != nil {
			b.WriteString(style(cell))
		} else {
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", max(w-lipgloss.Width(cell), 0)+colGap))
		}
	}
	b.WriteString("\n")
}
