// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is a single-choice menu. Header rows are rendered but the
// cursor never rests on them.
type selectModel struct {
	label     string
	options   []Option
	cursor    int
	chosen    string
	done      bool
	cancelled bool
	keys      KeyMap
}

func newSelectModel(p SelectPrompt) selectModel {
	m := selectModel{
		label:   p.Label,
		options: p.Options,
		cursor:  -1,
		keys:    DefaultKeyMap,
	}
	for i, o := range p.Options {
		if o.Header {
			continue
		}
		if m.cursor < 0 {
			m.cursor = i
		}
		if p.Initial != "" && o.Value == p.Initial {
			m.cursor = i
			break
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel), key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = m.step(m.cursor, -1)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = m.step(m.cursor, 1)
	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = m.step(-1, 1)
	case key.Matches(keyMsg, m.keys.End):
		m.cursor = m.step(len(m.options), -1)
	case key.Matches(keyMsg, m.keys.Enter):
		if m.cursor >= 0 && m.cursor < len(m.options) {
			m.chosen = m.options[m.cursor].Value
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// step returns the next selectable index from `from` in direction dir, or
// the current cursor when there is none.
func (m selectModel) step(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.options); i += dir {
		if !m.options[i].Header {
			return i
		}
	}
	return m.cursor
}

func (m selectModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return titleStyle.Render(m.label) + " " + answerStyle.Render(displayLabel(m.options[m.cursor])) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString("\n")
	for i, o := range m.options {
		switch {
		case o.Header:
			b.WriteString(headerStyle.Render(displayLabel(o)))
		case i == m.cursor:
			b.WriteString(cursorStyle.Render("❯ ") + selectedStyle.Render(displayLabel(o)))
		default:
			b.WriteString("  " + displayLabel(o))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderHelp(m.keys.selectHelp()))
	b.WriteString("\n")
	return b.String()
}
