// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package dockerflow implements the "docker" command family: an interactive
// selector over stored commands grouped by lifecycle phase, typed
// confirmation for destructive commands, and the add/list/edit/remove
// management flows.
package dockerflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wicat/internal/logger"
	"wicat/internal/records"
	"wicat/internal/runner"
	"wicat/internal/shortcuts"
	"wicat/internal/store"
	"wicat/internal/ui"
)

const (
	// RunConfirmPhrase must be typed exactly before a REMOVE command runs.
	RunConfirmPhrase = "remove"

	// DeleteConfirmPhrase must be typed exactly before a record is deleted.
	DeleteConfirmPhrase = "excluir"

	// clearValue empties an optional field while editing.
	clearValue = "-"
)

// Flow wires the docker command store to the prompts and the shell runner.
type Flow struct {
	Store  *store.Store[records.DockerCommand]
	Prompt ui.Prompter
	Runner runner.Runner
	Out    io.Writer
}

// TypeGroup holds the commands of one lifecycle phase in stored order.
type TypeGroup struct {
	Type     records.CommandType
	Commands []records.DockerCommand
}

// Group partitions cmds by type in display order (UP, RESET, STOP, REMOVE),
// omitting empty groups.
func Group(cmds []records.DockerCommand) []TypeGroup {
	var groups []TypeGroup
	for _, t := range records.CommandTypes {
		var members []records.DockerCommand
		for _, c := range cmds {
			if c.Type == t {
				members = append(members, c)
			}
		}
		if len(members) > 0 {
			groups = append(groups, TypeGroup{Type: t, Commands: members})
		}
	}
	return groups
}

// ShortcutUsage is how a shortcut is invoked from the shell.
func ShortcutUsage(shortcut string) string {
	return "wicat d " + shortcut
}

// loadForDisplay reads the store for read-only flows. A corrupt file is
// reported as a warning and treated as empty.
func (f *Flow) loadForDisplay() ([]records.DockerCommand, error) {
	cmds, err := f.Store.Load()
	if errors.Is(err, store.ErrCorrupt) {
		ui.StepColor.Fprintf(f.Out, "⚠️  Could not parse %s; showing no commands. Fix or remove the file.\n", f.Store.Path())
		return nil, nil
	}
	return cmds, err
}

func (f *Flow) failCorrupt(err error) error {
	return ui.Fail(f.Out, err,
		fmt.Sprintf("Could not parse %s", f.Store.Path()),
		"Fix or remove the file; nothing was changed")
}

func (f *Flow) failNotFound(name string) error {
	return ui.Fail(f.Out, fmt.Errorf("%w: %q", store.ErrNotFound, name),
		fmt.Sprintf("Command %q not found", name),
		`Use "wicat docker list" to see available commands`)
}

func (f *Flow) printEmpty() {
	ui.StepColor.Fprintln(f.Out, "📭 No commands configured")
	ui.IdentifierColor.Fprintln(f.Out, `💡 Use "wicat docker add" to create a new command`)
}

func (f *Flow) printRecord(c records.DockerCommand) {
	ui.IdentifierColor.Fprintf(f.Out, "📝 Name: %s\n", c.Name)
	ui.IdentifierColor.Fprintf(f.Out, "🏷️  Type: %s\n", c.Type)
	ui.IdentifierColor.Fprintf(f.Out, "⚡ Command: %s\n", c.Command)
	if c.Shortcut != "" {
		ui.IdentifierColor.Fprintf(f.Out, "🔗 Shortcut: %s\n", ShortcutUsage(c.Shortcut))
	}
}

// Interactive shows every stored command grouped by type and runs the one
// the user picks.
func (f *Flow) Interactive(ctx context.Context) error {
	ui.StatusColor.Fprintln(f.Out, "🐳 Wicat Docker - Quick Commands")
	fmt.Fprintln(f.Out)

	cmds, err := f.loadForDisplay()
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		f.printEmpty()
		return nil
	}

	var options []ui.Option
	for _, g := range Group(cmds) {
		options = append(options, ui.Option{Label: fmt.Sprintf("%s %s:", g.Type.Icon(), g.Type), Header: true})
		for _, c := range g.Commands {
			options = append(options, ui.Option{
				Value: c.Name,
				Label: fmt.Sprintf("  %s %s", c.Name, ui.DimColor.Sprintf("⚡ %s", c.Command)),
			})
		}
	}

	chosen, err := f.Prompt.Select(ui.SelectPrompt{Label: "🐳 Choose a command to run:", Options: options})
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}

	for _, c := range cmds {
		if c.Name == chosen {
			return f.RunRecord(ctx, c)
		}
	}
	return f.failNotFound(chosen)
}

// RunRecord executes one stored command. REMOVE commands run only after the
// user types RunConfirmPhrase exactly; anything else cancels without side
// effects. A non-zero exit is returned as *runner.ExitError.
func (f *Flow) RunRecord(ctx context.Context, c records.DockerCommand) error {
	fmt.Fprintln(f.Out)
	ui.IdentifierColor.Fprintf(f.Out, "🐳 Command: %s\n", c.Name)
	ui.IdentifierColor.Fprintf(f.Out, "🏷️  Type: %s\n", c.Type)
	ui.IdentifierColor.Fprintf(f.Out, "⚡ Running: %s\n", c.Command)
	fmt.Fprintln(f.Out)

	if c.Type.Destructive() {
		ui.StepColor.Fprintln(f.Out, "⚠️  WARNING: this command removes containers, images and volumes!")
		fmt.Fprintln(f.Out)

		ok, err := ui.ConfirmPhrase(f.Prompt, fmt.Sprintf("🔥 Type %q to confirm:", RunConfirmPhrase), RunConfirmPhrase)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Destructive command not confirmed", "name", c.Name)
			ui.Cancelled(f.Out)
			return nil
		}
		fmt.Fprintln(f.Out)
	}

	ui.SuccessColor.Fprintln(f.Out, "🏃 Running command...")
	err := f.Runner.Run(ctx, runner.Command{Line: c.Command})
	if err == nil {
		ui.SuccessColor.Fprintln(f.Out, "✨ Done.")
		return nil
	}

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return ui.Fail(f.Out, err, fmt.Sprintf("Command finished with exit code %d", exitErr.Code))
	}
	return ui.Fail(f.Out, err, fmt.Sprintf("Failed to run command: %v", err))
}

// collect prompts for every field, pre-filled from initial. owner is the
// record the shortcut may already belong to.
func (f *Flow) collect(initial records.DockerCommand, existing []records.DockerCommand, owner string, editing bool) (records.DockerCommand, error) {
	var out records.DockerCommand

	name, err := f.Prompt.Input(ui.InputPrompt{
		Label:    "📝 Command name:",
		Initial:  initial.Name,
		Validate: records.ValidateName,
	})
	if err != nil {
		return out, err
	}
	out.Name = name
	if owner == "" {
		owner = name
	}

	typeOptions := make([]ui.Option, 0, len(records.CommandTypes))
	for _, t := range records.CommandTypes {
		typeOptions = append(typeOptions, ui.Option{
			Value: string(t),
			Label: fmt.Sprintf("%s %s - %s", t.Icon(), t, t.Description()),
		})
	}
	typ, err := f.Prompt.Select(ui.SelectPrompt{
		Label:   "🏷️  Command type:",
		Options: typeOptions,
		Initial: string(initial.Type),
	})
	if err != nil {
		return out, err
	}
	if out.Type, err = records.ParseCommandType(typ); err != nil {
		return out, err
	}

	command, err := f.Prompt.Input(ui.InputPrompt{
		Label:   "⚡ Command to run:",
		Initial: initial.Command,
		Validate: func(v string) error {
			return records.ValidateRequired("command", v)
		},
	})
	if err != nil {
		return out, err
	}
	out.Command = strings.TrimSpace(command)

	label := "🔗 Shortcut (optional, e.g. rw, start, stop):"
	if editing && initial.Shortcut != "" {
		label = fmt.Sprintf("🔗 Shortcut (optional, %q to clear):", clearValue)
	}
	shortcut, err := f.Prompt.Input(ui.InputPrompt{
		Label:   label,
		Initial: initial.Shortcut,
		Validate: func(v string) error {
			v = strings.TrimSpace(v)
			if editing && v == clearValue {
				return nil
			}
			if err := records.ValidateOptionalToken("shortcut", v); err != nil {
				return err
			}
			return shortcuts.Check(existing, v, owner)
		},
	})
	if err != nil {
		return out, err
	}
	shortcut = strings.TrimSpace(shortcut)
	if editing && shortcut == clearValue {
		shortcut = ""
	}
	out.Shortcut = shortcut

	return out, out.Validate()
}

// Add collects a new command and upserts it by name.
func (f *Flow) Add() error {
	ui.StatusColor.Fprintln(f.Out, "🐳 Wicat Docker - Add New Command")
	fmt.Fprintln(f.Out)

	existing, err := f.Store.Load()
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return f.failCorrupt(err)
		}
		return err
	}

	c, err := f.collect(records.DockerCommand{}, existing, "", false)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}

	if err := f.Store.Upsert(c); err != nil {
		return err
	}
	logger.Info("Docker command saved", "name", c.Name, "type", c.Type)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Command added successfully!")
	f.printRecord(c)
	return nil
}

// List prints commands grouped by type, numbered within each group.
func (f *Flow) List() error {
	ui.StatusColor.Fprintln(f.Out, "🐳 Wicat Docker - Command List")
	fmt.Fprintln(f.Out)

	cmds, err := f.loadForDisplay()
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		f.printEmpty()
		return nil
	}

	for _, g := range Group(cmds) {
		ui.BoldColor.Fprintf(f.Out, "%s %s:\n", g.Type.Icon(), g.Type)
		for i, c := range g.Commands {
			line := fmt.Sprintf("  %d. %s %s", i+1, ui.BoldColor.Sprint(c.Name), ui.DimColor.Sprintf("⚡ %s", c.Command))
			if c.Shortcut != "" {
				line += " " + ui.DimColor.Sprintf("(%s)", ShortcutUsage(c.Shortcut))
			}
			ui.IdentifierColor.Fprintln(f.Out, line)
		}
	}
	ui.SuccessColor.Fprintf(f.Out, "📊 Total: %d command(s)\n", len(cmds))
	return nil
}

// Edit re-prompts every field of the named command with its current value
// pre-filled. Renaming onto another record's name fails with store.ErrConflict.
func (f *Flow) Edit(name string) error {
	current, found, err := f.Store.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return f.failCorrupt(err)
		}
		return err
	}
	if !found {
		return f.failNotFound(name)
	}

	ui.StatusColor.Fprintf(f.Out, "🐳 Wicat Docker - Edit Command %q\n", name)
	fmt.Fprintf(f.Out, "Editing command '%s'. Press Enter to keep the current value.\n\n", ui.IdentifierColor.Sprint(name))

	existing, err := f.Store.Load()
	if err != nil {
		return err
	}

	updated, err := f.collect(current, existing, name, true)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}

	if err := f.Store.Replace(name, updated); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ui.Fail(f.Out, err,
				fmt.Sprintf("A command named %q already exists", updated.Name),
				fmt.Sprintf("Choose another name or remove %q first", updated.Name))
		}
		return err
	}
	logger.Info("Docker command updated", "from", name, "to", updated.Name)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Command updated successfully!")
	f.printRecord(updated)
	return nil
}

// Remove deletes the named command after the user types DeleteConfirmPhrase
// exactly. Any other answer leaves the store untouched.
func (f *Flow) Remove(name string) error {
	current, found, err := f.Store.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return f.failCorrupt(err)
		}
		return err
	}
	if !found {
		return f.failNotFound(name)
	}

	ui.StatusColor.Fprintf(f.Out, "🐳 Wicat Docker - Remove Command %q\n", name)
	fmt.Fprintln(f.Out)
	ui.StepColor.Fprintln(f.Out, "⚠️  WARNING: this cannot be undone!")
	fmt.Fprintln(f.Out)
	f.printRecord(current)
	fmt.Fprintln(f.Out)

	ok, err := ui.ConfirmPhrase(f.Prompt, fmt.Sprintf("🔥 Type %q to confirm deletion:", DeleteConfirmPhrase), DeleteConfirmPhrase)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(f.Out)
		ui.StepColor.Fprintln(f.Out, "⚠️  Operation cancelled - confirmation text did not match")
		return nil
	}

	removed, err := f.Store.Remove(name)
	if err != nil {
		return err
	}
	if !removed {
		return f.failNotFound(name)
	}
	logger.Info("Docker command removed", "name", name)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Command removed successfully!")
	ui.DimColor.Fprintf(f.Out, "🗑️  %q was deleted permanently\n", name)
	return nil
}
