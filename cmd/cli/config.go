// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strconv"

	"wicat/internal/config"
	"wicat/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// dimColor is used for less important/secondary text in the CLI output
	dimColor        = color.New(color.Faint)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change wicat settings",
	Long: `Shows where wicat keeps its files and manages the optional config.yaml in the
configuration directory. Settings: shell (used to run stored commands),
clipboard (true/false), log_level (debug, info, warn, error).`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration directory and data files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Config directory: %s\n", identifierColor.Sprint(env.dir))
		printFile("Docker commands: ", config.DockerFile(env.dir))
		printFile("Stacks:          ", config.StacksFile(env.dir))
		printFile("Settings:        ", config.SettingsFile(env.dir))
		if logPath, err := logger.LogFilePath(); err == nil {
			printFile("Log file:        ", logPath)
		}
	},
}

func printFile(label, path string) {
	state := ""
	if _, err := os.Stat(path); err != nil {
		state = " " + dimColor.Sprint("[not created yet]")
	}
	fmt.Printf("%s %s%s\n", label, path, state)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := env.settings
		shell := s.ResolvedShell()
		if s.Shell == "" {
			shell += " " + dimColor.Sprint("[default]")
		}
		level := s.LogLevel
		if level == "" {
			level = "info " + dimColor.Sprint("[default]")
		}
		clipboardState := strconv.FormatBool(s.ClipboardEnabled())
		if s.Clipboard == nil {
			clipboardState += " " + dimColor.Sprint("[default]")
		}

		fmt.Printf("shell:     %s\n", shell)
		fmt.Printf("clipboard: %s\n", clipboardState)
		fmt.Printf("log_level: %s\n", level)
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change a setting",
	Example:           "  wicat config set clipboard false\n  wicat config set shell /bin/zsh",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: settingKeyCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := env.settings
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(env.dir, s); err != nil {
			return fmt.Errorf("error saving configuration: %w", err)
		}
		env.settings = s
		logger.Info("Setting changed", "key", args[0], "value", args[1])
		successColor.Printf("%s set to: %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
