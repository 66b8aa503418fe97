package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// SimpleTable is a simple table component for rendering static data.
type SimpleTable struct {
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given headers.
func NewSimpleTable(headers ...string) *SimpleTable {
	return &SimpleTable{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the header, a dashed rule under each column and one line per
// row. Headers are rendered even when there are no rows.
func (t *SimpleTable) View(styles Styles) string {
	// Calculate column widths
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	var sb strings.Builder

	rule := make([]string, len(colWidths))
	for i, w := range colWidths {
		rule[i] = strings.Repeat("-", w)
	}

	sb.WriteString(t.line(t.Headers, colWidths, styles.Header))
	sb.WriteString(t.line(rule, colWidths, styles.Rule))
	for _, row := range t.Rows {
		sb.WriteString(t.line(row, colWidths, styles.Cell))
	}

	return sb.String()
}

func (t *SimpleTable) line(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - lipgloss.Width(cell)
		parts[i] = style.Render(cell) + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ") + "\n"
}
