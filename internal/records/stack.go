// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package records

import (
	"fmt"
	"slices"
	"strings"
)

// reservedStackNames collide with the subcommands of "wicat go" and their aliases.
var reservedStackNames = []string{"add", "list", "ls", "edit", "remove", "rm", "help"}

// IsReservedStackName reports whether "wicat go <name>" would reach a
// subcommand or a flag instead of the stack.
func IsReservedStackName(name string) bool {
	return slices.Contains(reservedStackNames, name) || strings.HasPrefix(name, "-")
}

// Stack is a project directory stored in go-commands.json.
type Stack struct {
	// Name is the unique key of the record
	Name string `json:"name"`

	// Path is the absolute project directory
	Path string `json:"path"`

	// ExecCommand is run inside Path when navigation is invoked with --exec
	ExecCommand string `json:"execCommand"`
}

func (s Stack) Key() string { return s.Name }

// ValidateStackName applies ValidateName and rejects names that would be
// shadowed by a "go" subcommand.
func ValidateStackName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if IsReservedStackName(name) {
		return fmt.Errorf("%w: %q is a reserved word", ErrValidation, name)
	}
	return nil
}

// Validate checks the fields that can be verified without touching the filesystem.
func (s Stack) Validate() error {
	if err := ValidateStackName(s.Name); err != nil {
		return err
	}
	return ValidateRequired("path", s.Path)
}
