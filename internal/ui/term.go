// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TermPrompter renders prompts as small inline bubbletea programs.
type TermPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *TermPrompter) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, tea.WithInput(p.In), tea.WithOutput(p.Out)).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

func (p *TermPrompter) Select(sp SelectPrompt) (string, error) {
	if len(selectable(sp.Options)) == 0 {
		return "", errNoOptions
	}
	final, err := p.run(newSelectModel(sp))
	if err != nil {
		return "", err
	}
	m, ok := final.(selectModel)
	if !ok || m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

func (p *TermPrompter) Input(ip InputPrompt) (string, error) {
	final, err := p.run(newInputModel(ip))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
