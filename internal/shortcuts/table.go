// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package shortcuts maps the optional shortcut names stored on docker
// commands to the command they run. The CLI builds the table once at startup
// and registers one subcommand per entry.
package shortcuts

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"wicat/internal/logger"
	"wicat/internal/records"
)

var (
	// ErrDuplicate reports a shortcut already owned by another command.
	ErrDuplicate = errors.New("shortcut already in use")

	// ErrReserved reports a shortcut that would shadow a built-in subcommand.
	ErrReserved = errors.New("shortcut is a reserved word")
)

// ReservedNames are the built-in "docker" subcommands and their aliases.
var ReservedNames = []string{"add", "list", "ls", "edit", "remove", "rm", "help"}

// IsReserved reports whether shortcut collides with a built-in subcommand
// or would be parsed as a flag.
func IsReserved(shortcut string) bool {
	return slices.Contains(ReservedNames, shortcut) || strings.HasPrefix(shortcut, "-")
}

// Entry is one registered shortcut.
type Entry struct {
	Shortcut string
	Command  records.DockerCommand
}

// Table maps shortcut names to commands.
type Table struct {
	commands map[string]records.DockerCommand
	order    []string
}

// New creates an empty table.
func New() *Table {
	return &Table{commands: make(map[string]records.DockerCommand)}
}

// Register adds cmd under its shortcut. The first registration of a name wins.
func (t *Table) Register(cmd records.DockerCommand) error {
	name := cmd.Shortcut
	if IsReserved(name) {
		return fmt.Errorf("%w: %q (command %q)", ErrReserved, name, cmd.Name)
	}
	if owner, exists := t.commands[name]; exists {
		return fmt.Errorf("%w: %q is used by %q and %q", ErrDuplicate, name, owner.Name, cmd.Name)
	}
	t.commands[name] = cmd
	t.order = append(t.order, name)
	return nil
}

// Lookup returns the command registered under shortcut and whether it exists.
func (t *Table) Lookup(shortcut string) (records.DockerCommand, bool) {
	cmd, ok := t.commands[shortcut]
	return cmd, ok
}

// Entries lists registrations in stored order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, Entry{Shortcut: name, Command: t.commands[name]})
	}
	return out
}

func (t *Table) Len() int { return len(t.order) }

// Build registers every command that has a shortcut, in stored order.
// Rejected registrations are logged and returned; they never stop the build.
func Build(cmds []records.DockerCommand) (*Table, []error) {
	t := New()
	var errs []error
	for _, cmd := range cmds {
		if cmd.Shortcut == "" {
			continue
		}
		if err := t.Register(cmd); err != nil {
			logger.Warn("Skipping shortcut", "shortcut", cmd.Shortcut, "command", cmd.Name, "error", err)
			errs = append(errs, err)
		}
	}
	return t, errs
}

// Check validates that shortcut may be assigned to the command named owner,
// given the commands already stored. An empty shortcut is always allowed.
func Check(cmds []records.DockerCommand, shortcut, owner string) error {
	if shortcut == "" {
		return nil
	}
	if IsReserved(shortcut) {
		return fmt.Errorf("%w: %w: %q", records.ErrValidation, ErrReserved, shortcut)
	}
	for _, c := range cmds {
		if c.Shortcut == shortcut && c.Name != owner {
			return fmt.Errorf("%w: %w: %q belongs to %q", records.ErrValidation, ErrDuplicate, shortcut, c.Name)
		}
	}
	return nil
}
