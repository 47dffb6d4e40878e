package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/variants/internal/app"
	"github.com/idilsaglam/variants/internal/model"
)

func newModel() Model {
	return New(app.NewController(model.Seed(), nil), nil)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestSelectColor(t *testing.T) {
	m := press(t, newModel(), down, enter)
	require.Equal(t, "red", m.ctrl.Selection().SelectedColor)
}

func TestColorCursorStaysInBounds(t *testing.T) {
	m := press(t, newModel(), down, down, down, enter)
	require.Equal(t, 1, m.colorCursor)
	require.Equal(t, "red", m.ctrl.Selection().SelectedColor)
}

func TestAddColorThroughInput(t *testing.T) {
	m := press(t, newModel(), tab)
	require.Equal(t, focusInput, m.focus)

	m = press(t, m, runes("green"), enter)
	require.Equal(t, []model.Color{"blue", "red", "green"}, m.ctrl.Selection().Colors())
	require.Empty(t, m.ti.Value())
	require.Empty(t, m.ctrl.Selection().Pending)
}

func TestAddDuplicateColorKeepsInput(t *testing.T) {
	m := press(t, newModel(), tab, runes("blue"), enter)
	require.Len(t, m.ctrl.Selection().Colors(), 2)
	require.Equal(t, "blue", m.ti.Value())
}

func TestQuitKeyIsTypedIntoInput(t *testing.T) {
	m := newModel()
	m = press(t, m, tab)
	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)
	require.False(t, m.quitting)
	require.Equal(t, "q", m.ti.Value())
	_ = cmd
}

func TestSizeDropDownCycles(t *testing.T) {
	m := press(t, newModel(), tab, tab)
	require.Equal(t, focusSize, m.focus)

	m = press(t, m, right)
	require.Equal(t, model.Small, m.ctrl.Selection().SelectedSize)
	m = press(t, m, right)
	require.Equal(t, model.Medium, m.ctrl.Selection().SelectedSize)
	m = press(t, m, right)
	require.Equal(t, model.NoSize, m.ctrl.Selection().SelectedSize)
	m = press(t, m, left)
	require.Equal(t, model.Medium, m.ctrl.Selection().SelectedSize)
}

func TestSaveButton(t *testing.T) {
	m := press(t, newModel(), tab, tab, right, tab)
	require.Equal(t, focusSave, m.focus)

	m = press(t, m, enter)
	require.Equal(t, app.ScreenSummary, m.ctrl.Screen())
	require.Len(t, m.ctrl.Saved(), 2)
}

func TestCtrlSSavesFromAnyFocus(t *testing.T) {
	m := press(t, newModel(), tab, runes("x"), ctrlS)
	require.Equal(t, app.ScreenSummary, m.ctrl.Screen())
	require.Len(t, m.ctrl.Saved(), 4)
}

func TestSummaryScreenHasNoWayBack(t *testing.T) {
	m := press(t, newModel(), ctrlS, tab, enter, down, runes("b"))
	require.Equal(t, app.ScreenSummary, m.ctrl.Screen())

	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).quitting)
}

func TestQuitOnFilterScreen(t *testing.T) {
	updated, cmd := newModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).quitting)
}

func TestShiftTabWraps(t *testing.T) {
	m := press(t, newModel(), tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusSave, m.focus)
	require.Equal(t, "save", m.focus.String())
}

func TestWindowSize(t *testing.T) {
	updated, _ := newModel().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, updated.(Model).width)
}
