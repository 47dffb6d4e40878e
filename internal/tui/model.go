package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/variants/internal/app"
	"github.com/idilsaglam/variants/internal/logger"
)

// focus is the filter-screen control that receives keys.
type focus int

const (
	focusColors focus = iota
	focusInput
	focusSize
	focusSave
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusColors:
		return "colors"
	case focusInput:
		return "add-color"
	case focusSize:
		return "size"
	case focusSave:
		return "save"
	}
	return "unknown"
}

// Model is the Bubble Tea model for both screens.
type Model struct {
	ctrl *app.Controller
	log  *logger.Logger

	focus       focus
	colorCursor int
	ti          textinput.Model // add-color input

	keys     keyMap
	sumKeys  summaryKeys
	help     help.Model
	width    int
	quitting bool
}

func New(ctrl *app.Controller, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add new color"
	ti.CharLimit = 40

	keys := defaultKeys()
	return Model{
		ctrl:    ctrl,
		log:     log,
		ti:      ti,
		keys:    keys,
		sumKeys: summaryKeys{Quit: keys.Quit},
		help:    help.New(),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctrl *app.Controller, log *logger.Logger) error {
	p := tea.NewProgram(New(ctrl, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		log.WithFields(map[string]any{
			"screen": fm.ctrl.Screen().String(),
			"saved":  len(fm.ctrl.Saved()),
		}).Debug("session ended")
	}
	return nil
}
