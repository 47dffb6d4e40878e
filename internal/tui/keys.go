package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Add    key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev size")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next size")),
		Select: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add color")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Select, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Add, k.Save, k.Quit},
	}
}

// summaryKeys only exposes quit; there is no way back to the filters.
type summaryKeys struct{ Quit key.Binding }

func (k summaryKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k summaryKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }
