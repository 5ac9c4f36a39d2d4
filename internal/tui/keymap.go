package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the calculator
type KeyMap struct {
	Quit key.Binding

	Up   key.Binding
	Down key.Binding

	Dec    key.Binding
	Inc    key.Binding
	DecBig key.Binding
	IncBig key.Binding

	ToggleUnit   key.Binding
	ToggleMatrix key.Binding
	Reset        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next field"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "decrease"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "increase"),
		),
		DecBig: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "decrease x10"),
		),
		IncBig: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "increase x10"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "percent/pips"),
		),
		ToggleMatrix: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "matrix"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// Help lists the bindings shown in the footer.
func (k KeyMap) Help() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.DecBig, k.IncBig, k.ToggleUnit, k.ToggleMatrix, k.Reset, k.Quit}
}
