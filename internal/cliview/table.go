// Package cliview renders hpackit's dynamic table contents for terminal
// output, adapted from the teacher CLI's table view.
package cliview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hpackit/internal/shared/compression/hpack"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders a fixed set of columns over a slice of rows.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates an empty table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row; it must have the same length as the headers.
func (t *Table) AddRow(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

// Render lays the table out as aligned columns with a header rule.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return mutedStyle.Render("(empty)") + "\n"
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var out strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(headerStyle.Render(h), widths[i])
	}
	out.WriteString(strings.Join(parts, "  "))
	out.WriteByte('\n')

	rule := make([]string, len(t.headers))
	for i := range t.headers {
		rule[i] = mutedStyle.Render(strings.Repeat("-", widths[i]))
	}
	out.WriteString(strings.Join(rule, "  "))
	out.WriteByte('\n')

	for _, row := range t.rows {
		parts := make([]string, len(t.headers))
		for i := range t.headers {
			if i < len(row) {
				parts[i] = padRight(row[i], widths[i])
			}
		}
		out.WriteString(strings.Join(parts, "  "))
		out.WriteByte('\n')
	}

	return out.String()
}

// Print writes the rendered table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// DynamicTable renders the given encoder/decoder dynamic entries as a
// (index, name, value, size) table, with index 62 being the most recent.
func DynamicTable(entries []hpack.Entry) string {
	t := NewTable([]string{"index", "name", "value", "size"})
	for i, e := range entries {
		t.AddRow([]string{
			strconv.Itoa(62 + i),
			string(e.Name),
			string(e.Value),
			strconv.Itoa(int(e.Size())),
		})
	}
	return t.Render()
}
