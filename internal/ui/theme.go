package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, radio symbols and the border used by tables.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                 string
	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Header, Help               lipgloss.Style
	RadioOn, RadioOff, Cursor            string
	SymDone, SymCross                    string
	Border                               lipgloss.Border
	BorderColor                          lipgloss.Color
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Help:        lipgloss.NewStyle().Faint(true),
			RadioOn:     "◉",
			RadioOff:    "○",
			Cursor:      "❯",
			SymDone:     "✔",
			SymCross:    "✖",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:        "mono",
			Title:       lipgloss.NewStyle(),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle(),
			Success:     lipgloss.NewStyle(),
			Error:       lipgloss.NewStyle(),
			Selected:    lipgloss.NewStyle(),
			Header:      lipgloss.NewStyle(),
			Help:        lipgloss.NewStyle(),
			RadioOn:     "(x)",
			RadioOff:    "( )",
			Cursor:      ">",
			SymDone:     "x",
			SymCross:    "!",
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.Color(""),
		}
	default: // classic
		current = Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Header:      lipgloss.NewStyle().Bold(true),
			Help:        lipgloss.NewStyle().Faint(true),
			RadioOn:     "●",
			RadioOff:    "○",
			Cursor:      ">",
			SymDone:     "✔",
			SymCross:    "✖",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
	applyProfile()
}

// Expose what renderers need
func Current() Theme { return current }
