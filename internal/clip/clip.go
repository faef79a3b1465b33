// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package clip wraps the system clipboard behind a small interface so flows
// can be tested without touching the real clipboard.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility can be found.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard accepts text to place on the clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// Disabled discards everything; used when clipboard copies are switched off.
type Disabled struct{}

func (Disabled) WriteAll(string) error { return nil }

// Memory records the last text written. Useful in tests.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}

// New returns the system clipboard when enabled, otherwise Disabled.
func New(enabled bool) Clipboard {
	if !enabled {
		return Disabled{}
	}
	return System{}
}
