// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Terminal colors shared by the command flows.
var (
	StatusColor     = color.New(color.FgCyan)
	ErrorColor      = color.New(color.FgRed)
	StepColor       = color.New(color.FgYellow)
	SuccessColor    = color.New(color.FgGreen)
	IdentifierColor = color.New(color.FgBlue)
	BoldColor       = color.New(color.Bold)
	// DimColor is used for less important/secondary text
	DimColor = color.New(color.Faint)
)

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user, so the dispatcher only
// sets the exit status.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was marked by Reported.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Fail prints "❌ msg" followed by dim hints and returns err marked as reported.
func Fail(w io.Writer, err error, msg string, hints ...string) error {
	ErrorColor.Fprintf(w, "❌ %s\n", msg)
	for _, h := range hints {
		IdentifierColor.Fprintf(w, "💡 %s\n", h)
	}
	return Reported(err)
}

// Cancelled prints the standard cancellation notice.
func Cancelled(w io.Writer) {
	fmt.Fprintln(w)
	StepColor.Fprintln(w, "⚠️  Operation cancelled")
}
