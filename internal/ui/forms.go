// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-field form. The field starts out holding the
// initial value; validation runs on Enter and keeps the form open on error.
type inputModel struct {
	label     string
	input     textinput.Model
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
	keys      KeyMap
}

func newInputModel(p InputPrompt) inputModel {
	t := textinput.New()
	t.Prompt = "> "
	t.SetValue(p.Initial)
	t.CursorEnd()
	t.Focus()
	t.CharLimit = 0
	t.Width = 60

	return inputModel{
		label:    p.Label,
		input:    t,
		validate: p.Validate,
		keys:     DefaultKeyMap,
	}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Enter):
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = nil
	}
	return m, cmd
}

func (m inputModel) Value() string { return m.input.Value() }

func (m inputModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return titleStyle.Render(m.label) + " " + answerStyle.Render(m.input.Value()) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(renderHelp(m.keys.inputHelp()))
	b.WriteString("\n")
	return b.String()
}
