// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package uuidgen generates batches of random (version 4) UUIDs, shows
// progress while doing so, and hands the result to the clipboard.
package uuidgen

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"wicat/internal/clip"
	"wicat/internal/logger"
	"wicat/internal/records"
	"wicat/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
)

const (
	MinCount = 1
	MaxCount = 10000

	// EchoLimit is the largest batch that is also printed to the terminal.
	EchoLimit = 10

	barWidth = 50
)

// ParseCount parses and bounds-checks a requested batch size.
func ParseCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid number", records.ErrValidation, text)
	}
	if n < MinCount || n > MaxCount {
		return 0, fmt.Errorf("%w: count must be between %d and %d, got %d", records.ErrValidation, MinCount, MaxCount, n)
	}
	return n, nil
}

// Generate returns n random UUIDs. progress, when set, is called after each one.
func Generate(n int, progress func(done, total int)) ([]string, error) {
	if n < MinCount || n > MaxCount {
		return nil, fmt.Errorf("%w: count must be between %d and %d, got %d", records.ErrValidation, MinCount, MaxCount, n)
	}
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}
		out = append(out, id.String())
		if progress != nil {
			progress(i, n)
		}
	}
	return out, nil
}

// Bar renders "[████░░░░] 50% (5/10)" with width cells.
func Bar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	done = min(max(done, 0), total)
	filled := done * width / total
	percent := done * 100 / total
	return fmt.Sprintf("[%s%s] %d%% (%d/%d)",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent, done, total)
}

// Request describes one invocation of the generator.
type Request struct {
	// CountText is the raw --count value, ignored when Interactive
	CountText string

	// Interactive asks for the count instead of reading CountText
	Interactive bool

	// Copy puts the newline-joined result on the clipboard
	Copy bool
}

// Flow ties generation to prompts, progress output and the clipboard.
type Flow struct {
	Prompt    ui.Prompter
	Clipboard clip.Clipboard
	Out       io.Writer
}

func (f *Flow) count(req Request) (int, error) {
	if !req.Interactive {
		n, err := ParseCount(req.CountText)
		if err != nil {
			return 0, ui.Fail(f.Out, err, err.Error(), "Example: wicat uuids -c 10")
		}
		return n, nil
	}

	ui.IdentifierColor.Fprintln(f.Out, "Settings:")
	answer, err := f.Prompt.Input(ui.InputPrompt{
		Label:   "📝 How many UUIDs do you want to generate?",
		Initial: strconv.Itoa(MinCount),
		Validate: func(v string) error {
			_, err := ParseCount(v)
			return err
		},
	})
	if err != nil {
		return 0, err
	}
	return ParseCount(answer)
}

// Run generates the requested batch. Invalid counts produce no UUIDs.
func (f *Flow) Run(req Request) error {
	ui.StatusColor.Fprintln(f.Out, "🚀 UUID Generator v4")
	ui.DimColor.Fprintln(f.Out, "   Copies the result to the clipboard automatically")
	fmt.Fprintln(f.Out)

	n, err := f.count(req)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}

	ui.IdentifierColor.Fprintln(f.Out, "Processing:")
	ids, err := f.generate(n)
	if err != nil {
		return err
	}
	logger.Info("Generated UUIDs", "count", n)

	text := strings.Join(ids, "\n")
	fmt.Fprintln(f.Out)
	switch {
	case !req.Copy || f.Clipboard == nil:
		ui.SuccessColor.Fprintf(f.Out, "✅ %d UUID(s) generated!\n", n)
	default:
		if err := f.Clipboard.WriteAll(text); err != nil {
			logger.Warn("Clipboard copy failed", "error", err)
			ui.SuccessColor.Fprintf(f.Out, "✅ %d UUID(s) generated!\n", n)
			ui.StepColor.Fprintln(f.Out, "⚠️  Could not copy to the clipboard")
		} else {
			ui.SuccessColor.Fprintf(f.Out, "✅ %d UUID(s) generated and 📋 copied to the clipboard!\n", n)
		}
	}

	if n <= EchoLimit {
		fmt.Fprintln(f.Out)
		ui.IdentifierColor.Fprintln(f.Out, "🔍 Generated UUIDs:")
		ui.IdentifierColor.Fprintln(f.Out, "━━━━━━━━━━━━━━━━")
		fmt.Fprintln(f.Out, text)
	}
	return nil
}

// generate runs Generate behind a spinner whose suffix carries the progress
// bar. The suffix is only redrawn when the percentage changes.
func (f *Flow) generate(n int) ([]string, error) {
	if n == 1 {
		return Generate(n, nil)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f.Out))
	_ = s.Color("cyan")
	s.Suffix = " " + Bar(0, n, barWidth)
	s.Start()

	lastPercent := -1
	ids, err := Generate(n, func(done, total int) {
		percent := done * 100 / total
		if percent == lastPercent {
			return
		}
		lastPercent = percent
		s.Lock()
		s.Suffix = " " + Bar(done, total, barWidth)
		s.Unlock()
	})
	s.Stop()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(f.Out, "🔄 %s\n", Bar(n, n, barWidth))
	return ids, nil
}
