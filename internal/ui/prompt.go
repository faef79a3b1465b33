// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui provides the interactive prompts used by the command flows: a
// bubbletea selector and text input when attached to a terminal, and a plain
// line-based fallback for pipes and dumb terminals.
package ui

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt (Esc, Ctrl+C, EOF).
var ErrCancelled = errors.New("operation cancelled")

var errNoOptions = errors.New("nothing to select")

// Option is one entry of a selection menu. Header entries are shown but
// cannot be chosen.
type Option struct {
	Value  string
	Label  string
	Header bool
}

// SelectPrompt asks the user to pick one option.
type SelectPrompt struct {
	Label   string
	Options []Option
	// Initial is the Value preselected when the menu opens
	Initial string
}

// InputPrompt asks for a line of text. Initial pre-fills the answer so that
// pressing Enter keeps the current value.
type InputPrompt struct {
	Label    string
	Initial  string
	Validate func(string) error
}

// Prompter collects answers from the user.
type Prompter interface {
	Input(p InputPrompt) (string, error)
	Select(p SelectPrompt) (string, error)
}

// ConfirmPhrase asks the user to type phrase exactly. Anything else,
// including a cancelled prompt, counts as a refusal.
func ConfirmPhrase(p Prompter, label, phrase string) (bool, error) {
	answer, err := p.Input(InputPrompt{Label: label})
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return answer == phrase, nil
}

// NewPrompter picks the bubbletea prompter when both ends are terminals and
// the line prompter otherwise.
func NewPrompter(in, out *os.File) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &TermPrompter{In: in, Out: out}
	}
	return NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func selectable(options []Option) []Option {
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if !o.Header {
			out = append(out, o)
		}
	}
	return out
}

func displayLabel(o Option) string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}
