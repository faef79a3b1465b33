// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package stackflow implements the "go" command family: resolving a named
// project directory, handing a cd instruction back to the user (or to the
// shell wrapper), optionally running the stack's command inside it, and the
// add/list/edit/remove management flows.
package stackflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wicat/internal/clip"
	"wicat/internal/config"
	"wicat/internal/logger"
	"wicat/internal/records"
	"wicat/internal/runner"
	"wicat/internal/store"
	"wicat/internal/ui"
	"wicat/internal/util"
)

// ErrPathMissing is returned when a stack's directory no longer exists.
var ErrPathMissing = errors.New("stack path does not exist")

const (
	// DeleteConfirmPhrase must be typed exactly before a stack is deleted.
	DeleteConfirmPhrase = "excluir"

	clearValue     = "-"
	maxSuggestions = 3
)

// Options selects what Execute does once the stack is resolved.
type Options struct {
	// Exec runs the stack's exec command inside its directory
	Exec bool

	// GetPath prints only the path, for the shell wrapper
	GetPath bool

	// GetExec prints only the exec command (possibly empty), for the shell wrapper
	GetExec bool
}

// Flow wires the stack store to the prompts, the shell runner and the clipboard.
type Flow struct {
	Store     *store.Store[records.Stack]
	Prompt    ui.Prompter
	Runner    runner.Runner
	Clipboard clip.Clipboard
	// Copy enables copying cd instructions to the clipboard
	Copy bool
	Out  io.Writer
	// Err receives failures in the machine-readable modes; defaults to Out
	Err io.Writer
}

func (f *Flow) errOut(opts Options) io.Writer {
	if (opts.GetPath || opts.GetExec) && f.Err != nil {
		return f.Err
	}
	return f.Out
}

func (f *Flow) failCorrupt(w io.Writer, err error) error {
	return ui.Fail(w, err,
		fmt.Sprintf("Could not parse %s", f.Store.Path()),
		"Fix or remove the file; nothing was changed")
}

func (f *Flow) failNotFound(w io.Writer, name string) error {
	hints := []string{`Use "wicat go list" to see available stacks`, `Use "wicat go add" to create a new stack`}
	if similar := f.Store.Suggest(name, maxSuggestions); len(similar) > 0 {
		hints = append([]string{"Did you mean: " + strings.Join(similar, ", ") + "?"}, hints...)
	}
	return ui.Fail(w, fmt.Errorf("%w: %q", store.ErrNotFound, name),
		fmt.Sprintf("Stack %q not found", name), hints...)
}

func (f *Flow) lookup(w io.Writer, name string) (records.Stack, error) {
	s, found, err := f.Store.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return s, f.failCorrupt(w, err)
		}
		return s, err
	}
	if !found {
		return s, f.failNotFound(w, name)
	}
	return s, nil
}

// Execute resolves the named stack and acts on it according to opts. The
// stack's directory is checked on every call; a missing directory fails
// with ErrPathMissing before anything is printed or spawned.
func (f *Flow) Execute(ctx context.Context, name string, opts Options) error {
	w := f.errOut(opts)
	if name == "" {
		return ui.Fail(w, fmt.Errorf("%w: stack name is required", records.ErrValidation),
			"Stack name is required", "Example: wicat go wicat-web -e")
	}

	s, err := f.lookup(w, name)
	if err != nil {
		return err
	}

	if info, statErr := os.Stat(s.Path); statErr != nil || !info.IsDir() {
		logger.Warn("Stack path missing", "name", s.Name, "path", s.Path)
		return ui.Fail(w, fmt.Errorf("%w: %s", ErrPathMissing, s.Path),
			fmt.Sprintf("Path not found: %s", s.Path),
			fmt.Sprintf(`Use "wicat go edit %s" to fix the path`, s.Name))
	}

	if opts.GetPath {
		fmt.Fprintln(f.Out, s.Path)
		return nil
	}
	if opts.GetExec {
		fmt.Fprintln(f.Out, s.ExecCommand)
		return nil
	}

	ui.StatusColor.Fprintln(f.Out, "🚀 Wicat Go - Quick Navigation")
	ui.IdentifierColor.Fprintf(f.Out, "📁 Stack: %s\n", s.Name)
	ui.IdentifierColor.Fprintf(f.Out, "📂 Path: %s\n", s.Path)

	switch {
	case opts.Exec && s.ExecCommand != "":
		ui.IdentifierColor.Fprintf(f.Out, "⚡ Command: %s\n", s.ExecCommand)
		fmt.Fprintln(f.Out)
		return f.run(ctx, s)
	case opts.Exec:
		ui.StepColor.Fprintln(f.Out, "⚠️  No exec command configured for this stack")
		fmt.Fprintln(f.Out)
		f.writeCdCommand(s.Path)
	default:
		fmt.Fprintln(f.Out)
		f.writeCdCommand(s.Path)
		if s.ExecCommand != "" {
			fmt.Fprintln(f.Out)
			ui.DimColor.Fprintln(f.Out, "💡 To run its command as well, use:")
			fmt.Fprintf(f.Out, "wicat go %s -e\n", s.Name)
		}
	}
	return nil
}

// Choose lets the user pick a stack from a menu and then runs Execute on it.
func (f *Flow) Choose(ctx context.Context, opts Options) error {
	stacks, err := f.Store.Load()
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return f.failCorrupt(f.Out, err)
		}
		return err
	}
	if len(stacks) == 0 {
		ui.StepColor.Fprintln(f.Out, "📭 No stacks configured")
		ui.IdentifierColor.Fprintln(f.Out, `💡 Use "wicat go add" to create a new stack`)
		return nil
	}

	options := make([]ui.Option, 0, len(stacks))
	for _, s := range stacks {
		options = append(options, ui.Option{
			Value: s.Name,
			Label: fmt.Sprintf("%s %s", s.Name, ui.DimColor.Sprintf("📂 %s", s.Path)),
		})
	}
	name, err := f.Prompt.Select(ui.SelectPrompt{Label: "🚀 Choose a stack:", Options: options})
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}
	return f.Execute(ctx, name, opts)
}

func (f *Flow) run(ctx context.Context, s records.Stack) error {
	ui.SuccessColor.Fprintln(f.Out, "🏃 Running command...")
	err := f.Runner.Run(ctx, runner.Command{Line: s.ExecCommand, Dir: s.Path})
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

// writeCdCommand prints the cd instruction and copies it to the clipboard.
// A clipboard failure only downgrades the message.
func (f *Flow) writeCdCommand(path string) {
	cd := util.CdCommand(path)
	ui.IdentifierColor.Fprintln(f.Out, "💡 Command ready to run:")
	ui.SuccessColor.Fprintln(f.Out, cd)

	if !f.Copy || f.Clipboard == nil {
		return
	}
	if err := f.Clipboard.WriteAll(cd); err != nil {
		logger.Warn("Clipboard copy failed", "error", err)
		ui.DimColor.Fprintln(f.Out, "   Type the command manually")
		return
	}
	ui.StepColor.Fprintln(f.Out, "📋 Command copied to clipboard!")
	ui.DimColor.Fprintln(f.Out, "   Paste with Cmd+V (Mac) or Ctrl+V (Windows/Linux)")
}

// ValidatePath accepts an existing directory, expanding a leading "~".
func ValidatePath(value string) error {
	if err := records.ValidateRequired("path", value); err != nil {
		return err
	}
	resolved, err := config.ResolvePath(value)
	if err != nil {
		return fmt.Errorf("%w: %v", records.ErrValidation, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("%w: path does not exist: %s", records.ErrValidation, resolved)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", records.ErrValidation, resolved)
	}
	return nil
}

func (f *Flow) collect(initial records.Stack, editing bool) (records.Stack, error) {
	var out records.Stack

	name, err := f.Prompt.Input(ui.InputPrompt{
		Label:    "📝 Stack name:",
		Initial:  initial.Name,
		Validate: records.ValidateStackName,
	})
	if err != nil {
		return out, err
	}
	out.Name = name

	path, err := f.Prompt.Input(ui.InputPrompt{
		Label:    "📂 Project path:",
		Initial:  initial.Path,
		Validate: ValidatePath,
	})
	if err != nil {
		return out, err
	}
	if out.Path, err = config.ResolvePath(path); err != nil {
		return out, err
	}

	label := "⚡ Command to run (optional):"
	if editing && initial.ExecCommand != "" {
		label = fmt.Sprintf("⚡ Command to run (optional, %q to clear):", clearValue)
	}
	execCommand, err := f.Prompt.Input(ui.InputPrompt{Label: label, Initial: initial.ExecCommand})
	if err != nil {
		return out, err
	}
	execCommand = strings.TrimSpace(execCommand)
	if editing && execCommand == clearValue {
		execCommand = ""
	}
	out.ExecCommand = execCommand

	return out, out.Validate()
}

func (f *Flow) printRecord(s records.Stack) {
	ui.IdentifierColor.Fprintf(f.Out, "📁 Name: %s\n", s.Name)
	ui.IdentifierColor.Fprintf(f.Out, "📂 Path: %s\n", s.Path)
	if s.ExecCommand != "" {
		ui.IdentifierColor.Fprintf(f.Out, "⚡ Command: %s\n", s.ExecCommand)
	}
}

// Add collects a new stack and upserts it by name.
func (f *Flow) Add() error {
	ui.StatusColor.Fprintln(f.Out, "🚀 Wicat Go - Add New Stack")
	fmt.Fprintln(f.Out)

	if _, err := f.Store.Load(); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return f.failCorrupt(f.Out, err)
		}
		return err
	}

	s, err := f.collect(records.Stack{}, false)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(f.Out)
			return nil
		}
		return err
	}

	if err := f.Store.Upsert(s); err != nil {
		return err
	}
	logger.Info("Stack saved", "name", s.Name, "path", s.Path)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Stack added successfully!")
	f.printRecord(s)
	return nil
}

// List prints every stack with its path and exec command.
func (f *Flow) List() error {
	ui.StatusColor.Fprintln(f.Out, "🚀 Wicat Go - Available Stacks")
	fmt.Fprintln(f.Out)

	stacks, err := f.Store.Load()
	if errors.Is(err, store.ErrCorrupt) {
		ui.StepColor.Fprintf(f.Out, "⚠️  Could not parse %s; showing no stacks. Fix or remove the file.\n", f.Store.Path())
		stacks, err = nil, nil
	}
	if err != nil {
		return err
	}
	if len(stacks) == 0 {
		ui.StepColor.Fprintln(f.Out, "📭 No stacks configured")
		ui.IdentifierColor.Fprintln(f.Out, `💡 Use "wicat go add" to create a new stack`)
		return nil
	}

	for i, s := range stacks {
		ui.IdentifierColor.Fprintf(f.Out, "%d. %s\n", i+1, ui.BoldColor.Sprint(s.Name))
		path := s.Path
		if _, statErr := os.Stat(s.Path); statErr != nil {
			path += " " + ui.ErrorColor.Sprint("(missing)")
		}
		ui.DimColor.Fprintf(f.Out, "   📂 %s\n", path)
		if s.ExecCommand != "" {
			ui.DimColor.Fprintf(f.Out, "   ⚡ %s\n", s.ExecCommand)
		}
		fmt.Fprintln(f.Out)
	}
	ui.SuccessColor.Fprintf(f.Out, "📊 Total: %d stack(s)\n", len(stacks))
	return nil
}

// Edit re-prompts every field of the named stack with its current value
// pre-filled. Renaming onto another stack's name fails with store.ErrConflict.
func (f *Flow) Edit(name string) error {
	current, err := f.lookup(f.Out, name)
	if err != nil {
		return err
	}

	ui.StatusColor.Fprintf(f.Out, "🚀 Wicat Go - Edit Stack %q\n", name)
	fmt.Fprintf(f.Out, "Editing stack '%s'. Press Enter to keep the current value.\n\n", ui.IdentifierColor.Sprint(name))

	updated, err := f.collect(current, true)
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
				fmt.Sprintf("A stack named %q already exists", updated.Name),
				fmt.Sprintf("Choose another name or remove %q first", updated.Name))
		}
		return err
	}
	logger.Info("Stack updated", "from", name, "to", updated.Name)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Stack updated successfully!")
	f.printRecord(updated)
	return nil
}

// Remove deletes the named stack after the user types DeleteConfirmPhrase
// exactly.
func (f *Flow) Remove(name string) error {
	current, err := f.lookup(f.Out, name)
	if err != nil {
		return err
	}

	ui.StatusColor.Fprintf(f.Out, "🚀 Wicat Go - Remove Stack %q\n", name)
	fmt.Fprintln(f.Out)
	ui.StepColor.Fprintln(f.Out, "⚠️  WARNING: this cannot be undone! The project directory itself is not touched.")
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
		return f.failNotFound(f.Out, name)
	}
	logger.Info("Stack removed", "name", name)

	fmt.Fprintln(f.Out)
	ui.SuccessColor.Fprintln(f.Out, "✅ Stack removed successfully!")
	ui.DimColor.Fprintf(f.Out, "🗑️  %q was deleted permanently\n", name)
	return nil
}
