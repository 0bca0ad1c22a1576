// Package keymap defines the key bindings for the dashboard.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the dashboard responds to. It implements
// the help bubble's KeyMap interface so hints render straight from the
// bindings.
type KeyMap struct {
	StartRun  key.Binding
	CancelRun key.Binding
	Reload    key.Binding

	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding

	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Default returns the standard key bindings.
func Default() KeyMap {
	return KeyMap{
		StartRun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run demo"),
		),
		CancelRun: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel run"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload snapshot"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("⏎/space", "expand reasoning"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartRun, k.CancelRun, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartRun, k.CancelRun, k.Reload},
		{k.NextTab, k.PrevTab, k.Up, k.Down, k.Expand},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
