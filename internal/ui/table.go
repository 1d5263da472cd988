package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. Width 0 sizes the column to its widest cell.
type Column struct {
	Title string
	Width int
}

// Row is a slice of cell values.
type Row []string

// Table renders a lipgloss-styled table.
type Table struct {
	Columns []Column
	Rows    []Row
	SelIdx  int // selected row index (-1 = none)
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols, SelIdx: -1}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// widths resolves auto-sized columns against the current rows.
func (t *Table) widths() []int {
	ws := make([]int, len(t.Columns))
	for j, col := range t.Columns {
		if col.Width > 0 {
			ws[j] = col.Width
			continue
		}
		w := lipgloss.Width(col.Title)
		for _, row := range t.Rows {
			if j < len(row) && lipgloss.Width(row[j]) > w {
				w = lipgloss.Width(row[j])
			}
		}
		ws[j] = w
	}
	return ws
}

// fit left-aligns s within exactly width cells, cutting with an ellipsis.
// Padding is done by hand; lipgloss Width wraps instead of truncating.
func fit(s string, width int) string {
	w := lipgloss.Width(s)
	if w == width {
		return s
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	if width <= 1 {
		return string([]rune(s)[:width])
	}
	r := []rune(s)
	for lipgloss.Width(string(r)) > width-1 {
		r = r[:len(r)-1]
	}
	return fit(string(r)+"…", width)
}

// Render returns the full table as a string.
func (t *Table) Render() string {
	var sb strings.Builder
	ws := t.widths()

	headerStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(ColorValue)
	dimStyle := lipgloss.NewStyle().Foreground(ColorMeta)

	line := func(cells []string) {
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}

	var headers, divider []string
	for j, col := range t.Columns {
		headers = append(headers, headerStyle.Render(fit(col.Title, ws[j])))
		divider = append(divider, dimStyle.Render(strings.Repeat("-", ws[j])))
	}
	line(headers)
	line(divider)

	for i, row := range t.Rows {
		style := cellStyle
		if i == t.SelIdx {
			style = StyleSelected
		}
		cells := make([]string, len(t.Columns))
		for j := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			cells[j] = style.Render(fit(val, ws[j]))
		}
		line(cells)
	}

	return sb.String()
}

// KeyValueBlock renders key-value pairs in a bordered box. Keys are padded
// to the longest key so values line up.
func KeyValueBlock(title string, pairs [][2]string) string {
	keyWidth := 0
	for _, p := range pairs {
		if n := lipgloss.Width(p[0]) + 1; n > keyWidth {
			keyWidth = n
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fmt.Sprintf("%-*s", keyWidth, p[0]+":"))
		sb.WriteString("  " + key + "  " + StyleValue.Render(p[1]) + "\n")
	}
	return StyleBorder.Render(sb.String())
}
