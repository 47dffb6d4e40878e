package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/variants/internal/app"
	"github.com/idilsaglam/variants/internal/filter"
	"github.com/idilsaglam/variants/internal/summary"
	"github.com/idilsaglam/variants/internal/ui"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ctrl.Screen() == app.ScreenSummary {
		return m.summaryView()
	}
	return m.filterView()
}

func (m Model) filterView() string {
	t := ui.Current()
	sel := m.ctrl.Selection()

	var colors strings.Builder
	colors.WriteString(t.Header.Render("COLOR") + "\n")
	for i, opt := range sel.ColorOptions() {
		focused := m.focus == focusColors && i == m.colorCursor
		colors.WriteString(ui.Radio(opt.Color, opt.Selected, focused) + "\n")
	}
	colors.WriteString(m.ti.View() + " " + button("Add Color", m.focus == focusInput))

	size := t.Header.Render("SIZE") + "\n" + dropDown(sel.SelectedSize.Title(), m.focus == focusSize)

	filters := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(colors.String()),
		size,
	)

	table := m.ctrl.Table()
	sections := []string{
		t.Title.Render("Variants"),
		filters,
		ui.Table(filter.Header, table.Records(), true),
		button("Save", m.focus == focusSave),
		m.help.View(m.keys),
	}
	return ui.PanelString(strings.Join(sections, "\n\n"))
}

func (m Model) summaryView() string {
	t := ui.Current()
	s := m.ctrl.Summary()
	sections := []string{
		t.Title.Render("Saved Selections Summary"),
		ui.Table(summary.Header, s.Records(), true),
		m.help.View(m.sumKeys),
	}
	return ui.PanelString(strings.Join(sections, "\n\n"))
}

func button(label string, focused bool) string {
	t := ui.Current()
	b := "[ " + label + " ]"
	if focused {
		return t.Selected.Render(b)
	}
	return t.Accent.Render(b)
}

func dropDown(label string, focused bool) string {
	t := ui.Current()
	d := "[ " + label + " ▾ ]"
	if focused {
		return t.Cursor + " " + t.Selected.Render(d)
	}
	return "  " + d
}
