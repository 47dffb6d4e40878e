package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/variants/internal/app"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.ctrl.Screen() == app.ScreenSummary {
			if key.Matches(msg, m.sumKeys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.updateFiltering(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.ctrl.Selection()

	switch {
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			sel.SetPending(m.ti.Value())
			if sel.CommitPending() {
				m.ti.SetValue("")
			}
			return m, nil
		case tea.KeyEsc:
			return m.setFocus(focusColors)
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		sel.SetPending(m.ti.Value())
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.focus {
	case focusColors:
		colors := sel.Colors()
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.colorCursor > 0 {
				m.colorCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.colorCursor < len(colors)-1 {
				m.colorCursor++
			}
		case key.Matches(msg, m.keys.Select):
			if m.colorCursor < len(colors) {
				sel.SetSelectedColor(colors[m.colorCursor])
			}
		}
	case focusSize:
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
			m.cycleSize(-1)
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Select):
			m.cycleSize(1)
		}
	case focusSave:
		if key.Matches(msg, m.keys.Select) {
			return m.save()
		}
	}
	return m, nil
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == focusInput {
		return m, m.ti.Focus()
	}
	m.ti.Blur()
	return m, nil
}

// cycleSize steps through the size drop-down, wrapping at both ends.
func (m Model) cycleSize(step int) {
	sel := m.ctrl.Selection()
	opts := sel.SizeOptions()
	idx := 0
	for i, o := range opts {
		if o.Selected {
			idx = i
			break
		}
	}
	idx = (idx + step + len(opts)) % len(opts)
	sel.SetSelectedSize(opts[idx].Size)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	m.ctrl.Save()
	m.ti.Blur()
	return m, nil
}
