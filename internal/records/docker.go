// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package records

import (
	"fmt"
	"strings"
)

// CommandType is the lifecycle phase a docker command belongs to.
type CommandType string

const (
	TypeUp     CommandType = "UP"
	TypeReset  CommandType = "RESET"
	TypeStop   CommandType = "STOP"
	TypeRemove CommandType = "REMOVE"
)

// CommandTypes lists every type in display order.
var CommandTypes = []CommandType{TypeUp, TypeReset, TypeStop, TypeRemove}

// ParseCommandType accepts a type name in any letter case.
func ParseCommandType(s string) (CommandType, error) {
	t := CommandType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range CommandTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown command type %q (expected UP, RESET, STOP or REMOVE)", ErrValidation, s)
}

// Icon returns the marker shown next to a type heading.
func (t CommandType) Icon() string {
	switch t {
	case TypeUp:
		return "🟢"
	case TypeReset:
		return "🔄"
	case TypeStop:
		return "🟡"
	case TypeRemove:
		return "🔴"
	default:
		return "⚫"
	}
}

// Description is the short help text used in the type selector.
func (t CommandType) Description() string {
	switch t {
	case TypeUp:
		return "Start services"
	case TypeReset:
		return "Restart services"
	case TypeStop:
		return "Stop services"
	case TypeRemove:
		return "Remove services"
	default:
		return ""
	}
}

// Destructive reports whether running a command of this type needs a typed confirmation.
func (t CommandType) Destructive() bool {
	return t == TypeRemove
}

// DockerCommand is a named shell command stored in docker-commands.json.
type DockerCommand struct {
	// Name is the unique key of the record
	Name string `json:"name"`

	// Type is the lifecycle phase used for grouping and confirmation
	Type CommandType `json:"type"`

	// Command is the shell text executed through the system shell
	Command string `json:"command"`

	// Shortcut optionally exposes the command as its own subcommand
	Shortcut string `json:"shortcut,omitempty"`
}

func (c DockerCommand) Key() string { return c.Name }

// Validate checks every field the add/edit flows collect.
func (c DockerCommand) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if _, err := ParseCommandType(string(c.Type)); err != nil {
		return err
	}
	if err := ValidateRequired("command", c.Command); err != nil {
		return err
	}
	return ValidateOptionalToken("shortcut", c.Shortcut)
}
