// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the viewer. Printable keys go to
// the focused text input, so navigation uses arrows and control keys
// only. The filter key is "/" because GitHub logins never contain it.
type KeyMap struct {
	NextField     key.Binding
	PreviousField key.Binding
	ClearField    key.Binding

	// Result list scrolling.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	FilterActivate key.Binding
	FilterAccept   key.Binding // Leave filter mode, keep the query.
	FilterClear    key.Binding // Leave filter mode, drop the query.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	ClearField: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "clear"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "page down"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterAccept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "apply filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.NextField, keys.ClearField, keys.FilterActivate, keys.Quit}
}
