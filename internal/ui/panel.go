package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PanelString frames content with the current theme's border.
func PanelString(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a frame.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(strings.Join(lines, "\n")))
}

// Table renders header and records as a bordered grid. The last record is
// styled as a totals row when totals is set.
func Table(header []string, records [][]string, totals bool) string {
	t := Current()
	last := len(records) - 1
	tbl := table.New().
		Border(t.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
		Headers(header...).
		Rows(records...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(t.Header)
			case totals && row == last:
				return base.Inherit(t.Accent)
			}
			return base
		})
	return tbl.Render()
}

// Radio renders one single-select option.
func Radio(label string, on, focused bool) string {
	t := Current()
	mark := t.RadioOff
	if on {
		mark = t.RadioOn
	}
	prefix := "  "
	if focused {
		prefix = t.Cursor + " "
	}
	line := mark + " " + label
	if focused {
		line = t.Selected.Render(line)
	}
	return prefix + line
}
