// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "fmt"

// Scripted answers prompts from a fixed queue, for tests and
// non-interactive callers. Running out of answers cancels the prompt.
// An empty answer behaves like pressing Enter: it keeps the initial value.
type Scripted struct {
	Answers []string
	// Asked records every prompt label in order
	Asked []string
}

func (s *Scripted) next(label string) (string, error) {
	s.Asked = append(s.Asked, label)
	if len(s.Answers) == 0 {
		return "", ErrCancelled
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Scripted) Input(p InputPrompt) (string, error) {
	answer, err := s.next(p.Label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = p.Initial
	}
	if p.Validate != nil {
		if err := p.Validate(answer); err != nil {
			return "", fmt.Errorf("%s: %w", p.Label, err)
		}
	}
	return answer, nil
}

func (s *Scripted) Select(p SelectPrompt) (string, error) {
	answer, err := s.next(p.Label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = p.Initial
	}
	for _, o := range selectable(p.Options) {
		if o.Value == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("%s: %q is not an option", p.Label, answer)
}
