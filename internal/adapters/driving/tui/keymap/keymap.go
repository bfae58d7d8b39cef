// Package keymap holds the key bindings of the search screen. Printable
// keys other than j/k are left to the query box.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding. Up, Down and Expand only apply while the
// result list has focus.
type KeyMap struct {
	Quit        key.Binding
	ToggleFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Expand      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
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
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
	}
}

// InputHelp lists the hints shown while typing.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.ToggleFocus, k.Quit}
}

// ResultsHelp lists the hints shown while browsing results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.ToggleFocus, k.Quit}
}
