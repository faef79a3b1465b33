// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner executes stored command text through the system shell with
// the terminal's standard streams attached, so interactive programs work.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"wicat/internal/logger"
)

// Command is a single shell invocation.
type Command struct {
	// Line is passed verbatim to the shell
	Line string

	// Dir is the working directory; empty means the current one
	Dir string
}

// Runner runs one command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts the child status from err: 0 for nil, the child's code
// for an ExitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// ShellRunner runs commands through Shell. Nil streams default to the
// process's own stdin, stdout and stderr.
type ShellRunner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewShellRunner(shell string) *ShellRunner {
	return &ShellRunner{Shell: shell}
}

// Run starts the shell, waits for it, and maps a non-zero exit to *ExitError.
// A failure to start (missing shell, bad directory) is returned wrapped.
func (r *ShellRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, r.Shell, shellArgs(r.Shell, c.Line)...)
	cmd.Dir = c.Dir
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	logger.Info("Running command", "shell", r.Shell, "dir", c.Dir, "command", c.Line)

	if err := cmd.Start(); err != nil {
		logger.Error("Failed to start command", "command", c.Line, "error", err)
		return fmt.Errorf("failed to start %s: %w", r.Shell, err)
	}

	// The child shares the terminal and receives Ctrl+C itself; keep this
	// process alive so it can report the child's exit status.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			logger.Warn("Command exited with non-zero status", "command", c.Line, "code", exitErr.ExitCode())
			return &ExitError{Code: exitErr.ExitCode(), Err: err}
		}
		logger.Error("Command failed", "command", c.Line, "error", err)
		return fmt.Errorf("command failed: %w", err)
	}
	logger.Info("Command finished", "command", c.Line)
	return nil
}

// shellArgs builds the argument list that makes shell run line.
func shellArgs(shell, line string) []string {
	base := strings.ToLower(filepath.Base(shell))
	switch strings.TrimSuffix(base, ".exe") {
	case "cmd":
		return []string{"/C", line}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command", line}
	default:
		return []string{"-c", line}
	}
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
