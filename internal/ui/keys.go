// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the interactive prompts.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the prompts.
type KeyMap struct {
	Up   key.Binding // Move cursor up
	Down key.Binding // Move cursor down
	Home key.Binding // Jump to first option
	End  key.Binding // Jump to last option

	Enter  key.Binding // Confirm selection or input
	Cancel key.Binding // Abort the prompt
	Quit   key.Binding // Abort a selection menu
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "last"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select/confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) selectHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Cancel}
}

func (k KeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Cancel}
}
