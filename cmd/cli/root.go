// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wicat/internal/clip"
	"wicat/internal/config"
	"wicat/internal/dockerflow"
	"wicat/internal/logger"
	"wicat/internal/records"
	"wicat/internal/runner"
	"wicat/internal/shortcuts"
	"wicat/internal/stackflow"
	"wicat/internal/store"
	"wicat/internal/ui"
	"wicat/internal/uuidgen"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor = color.New(color.FgRed)
	stepColor  = color.New(color.FgYellow)

	// configDirFlag holds --config-dir
	configDirFlag string

	// env is built once flags are parsed
	env *app

	// shortcutErrs collects rejected shortcuts until logging is set up
	shortcutErrs []error
)

// app holds everything a command needs, resolved from the config directory.
type app struct {
	dir      string
	settings config.Settings
	docker   *store.Store[records.DockerCommand]
	stacks   *store.Store[records.Stack]
	prompt   ui.Prompter
	runner   runner.Runner
	clip     clip.Clipboard
	out      io.Writer
	errOut   io.Writer
}

func newApp(dir string, settings config.Settings) *app {
	return &app{
		dir:      dir,
		settings: settings,
		docker:   store.New[records.DockerCommand](config.DockerFile(dir)),
		stacks:   store.New[records.Stack](config.StacksFile(dir)),
		prompt:   ui.NewPrompter(os.Stdin, os.Stdout),
		runner:   runner.NewShellRunner(settings.ResolvedShell()),
		clip:     clip.New(settings.ClipboardEnabled()),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

func (a *app) dockerFlow() *dockerflow.Flow {
	return &dockerflow.Flow{Store: a.docker, Prompt: a.prompt, Runner: a.runner, Out: a.out}
}

func (a *app) stackFlow() *stackflow.Flow {
	return &stackflow.Flow{
		Store:     a.stacks,
		Prompt:    a.prompt,
		Runner:    a.runner,
		Clipboard: a.clip,
		Copy:      a.settings.ClipboardEnabled(),
		Out:       a.out,
		Err:       a.errOut,
	}
}

func (a *app) uuidFlow() *uuidgen.Flow {
	return &uuidgen.Flow{Prompt: a.prompt, Clipboard: a.clip, Out: a.out}
}

var rootCmd = &cobra.Command{
	Use:   "wicat",
	Short: "Wicat CLI",
	Long: `A personal productivity CLI.

Stores named docker/compose commands grouped by lifecycle phase (UP, RESET,
STOP, REMOVE), named project directories ("stacks") with an optional command
to run inside them, and generates batches of v4 UUIDs.

Data lives in ~/.wicat-cli (override with --config-dir or $WICAT_CONFIG_DIR).
Run without arguments to open the interactive launcher.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.ResolveDir(configDirFlag)
		if err != nil {
			return err
		}
		if err := config.EnsureDir(dir); err != nil {
			return err
		}

		settings, err := config.LoadSettings(dir)
		if err != nil {
			if !isConfigCommand(cmd) {
				return err
			}
			stepColor.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			settings = config.Settings{}
		}

		logger.InitLogger(settings.LogLevel)
		logger.Debug("Starting", "command", cmd.CommandPath(), "config_dir", dir)
		for _, e := range shortcutErrs {
			logger.Warn("Shortcut not registered", "error", e)
		}

		env = newApp(dir, settings)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLauncher(cmd.Context(), env)
	},
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// RunCLI executes the command line and exits with its status.
func RunCLI() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	registerShortcuts(args)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return exitCode(err, os.Stderr)
}

// exitCode maps a command error to the process exit status. Errors already
// shown by a flow are not printed again; a child's non-zero exit status is
// passed through.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *runner.ExitError
	if ui.IsReported(err) || errors.As(err, &exitErr) {
		return runner.ExitCode(err)
	}
	if errors.Is(err, ui.ErrCancelled) {
		return 0
	}
	errorColor.Fprintf(w, "Error: %v\n", err)
	return 1
}

// configDirFromArgs finds --config-dir before cobra has parsed anything, so
// shortcuts can be registered from the right store.
func configDirFromArgs(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config-dir="); ok {
			return v
		}
		if a == "--config-dir" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// registerShortcuts adds one "docker <shortcut>" subcommand per stored
// shortcut. Problems reading the store only mean no shortcuts.
func registerShortcuts(args []string) {
	dir, err := config.ResolveDir(configDirFromArgs(args))
	if err != nil {
		return
	}
	cmds, err := store.New[records.DockerCommand](config.DockerFile(dir)).Load()
	if err != nil {
		shortcutErrs = append(shortcutErrs, err)
		return
	}
	table, errs := shortcuts.Build(cmds)
	shortcutErrs = append(shortcutErrs, errs...)
	addShortcutCommands(dockerCmd, table)
}

func addShortcutCommands(parent *cobra.Command, table *shortcuts.Table) {
	for _, entry := range table.Entries() {
		record := entry.Command
		parent.AddCommand(&cobra.Command{
			Use:     entry.Shortcut,
			Short:   fmt.Sprintf("%s %s: %s", record.Type.Icon(), record.Name, record.Command),
			Args:    cobra.NoArgs,
			GroupID: shortcutGroup.ID,
			RunE: func(cmd *cobra.Command, args []string) error {
				return env.dockerFlow().RunRecord(cmd.Context(), record)
			},
		})
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default $WICAT_CONFIG_DIR or ~/.wicat-cli)")

	rootCmd.AddCommand(dockerCmd)
	rootCmd.AddCommand(goCmd)
	rootCmd.AddCommand(uuidsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shellInitCmd)
}
