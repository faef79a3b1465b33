// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"
)

var (
	manageGroup   = &cobra.Group{ID: "manage", Title: "Manage Commands:"}
	shortcutGroup = &cobra.Group{ID: "shortcuts", Title: "Shortcuts:"}
)

var dockerCmd = &cobra.Command{
	Use:     "docker",
	Aliases: []string{"d"},
	Short:   "Run stored docker commands",
	Long: `Opens an interactive selector over the stored docker commands, grouped by
lifecycle phase (UP, RESET, STOP, REMOVE). REMOVE commands ask you to type
"remove" before they run.

Every command with a shortcut is also available directly as
"wicat d <shortcut>".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.dockerFlow().Interactive(cmd.Context())
	},
}

var dockerAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a new docker command",
	Args:    cobra.NoArgs,
	GroupID: manageGroup.ID,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.dockerFlow().Add()
	},
}

var dockerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored docker commands grouped by type",
	Args:    cobra.NoArgs,
	GroupID: manageGroup.ID,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.dockerFlow().List()
	},
}

var dockerEditCmd = &cobra.Command{
	Use:               "edit <name>",
	Short:             "Edit a stored docker command",
	Long:              `Prompts for every field with the current value pre-filled. Press Enter to keep a value.`,
	Args:              cobra.ExactArgs(1),
	GroupID:           manageGroup.ID,
	ValidArgsFunction: dockerNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.dockerFlow().Edit(args[0])
	},
}

var dockerRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove a stored docker command",
	Long:              `Deletes the command after you type "excluir" to confirm.`,
	Args:              cobra.ExactArgs(1),
	GroupID:           manageGroup.ID,
	ValidArgsFunction: dockerNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.dockerFlow().Remove(args[0])
	},
}

func init() {
	dockerCmd.AddGroup(manageGroup, shortcutGroup)
	dockerCmd.AddCommand(dockerAddCmd)
	dockerCmd.AddCommand(dockerListCmd)
	dockerCmd.AddCommand(dockerEditCmd)
	dockerCmd.AddCommand(dockerRemoveCmd)
}
