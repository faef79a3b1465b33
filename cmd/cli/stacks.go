// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"wicat/internal/stackflow"

	"github.com/spf13/cobra"
)

var goOpts stackflow.Options

var goCmd = &cobra.Command{
	Use:   "go [stack]",
	Short: "Jump to a stored project stack",
	Long: `Resolves a stored stack and prints a "cd" command for it (also copied to the
clipboard). With -e the stack's command runs inside its directory instead.

A program cannot change its parent shell's directory, so --get-path and
--get-exec print bare values for a shell wrapper; see "wicat shell-init".
Without a stack name an interactive picker is shown.`,
	Example: `  wicat go wicat-web
  wicat go wicat-web -e
  cd "$(wicat go wicat-web --get-path)"`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: stackNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !goOpts.GetPath && !goOpts.GetExec {
			return env.stackFlow().Choose(cmd.Context(), goOpts)
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return env.stackFlow().Execute(cmd.Context(), name, goOpts)
	},
}

var goAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a new stack",
	Args:    cobra.NoArgs,
	GroupID: manageGroup.ID,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.stackFlow().Add()
	},
}

var goListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored stacks",
	Args:    cobra.NoArgs,
	GroupID: manageGroup.ID,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.stackFlow().List()
	},
}

var goEditCmd = &cobra.Command{
	Use:               "edit <stack>",
	Short:             "Edit a stored stack",
	Args:              cobra.ExactArgs(1),
	GroupID:           manageGroup.ID,
	ValidArgsFunction: stackNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.stackFlow().Edit(args[0])
	},
}

var goRemoveCmd = &cobra.Command{
	Use:               "remove <stack>",
	Aliases:           []string{"rm"},
	Short:             "Remove a stored stack (the directory is left alone)",
	Args:              cobra.ExactArgs(1),
	GroupID:           manageGroup.ID,
	ValidArgsFunction: stackNameCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.stackFlow().Remove(args[0])
	},
}

func init() {
	goCmd.Flags().BoolVarP(&goOpts.Exec, "exec", "e", false, "run the stack's command inside its directory")
	goCmd.Flags().BoolVar(&goOpts.GetPath, "get-path", false, "print only the stack path (for shell wrappers)")
	goCmd.Flags().BoolVar(&goOpts.GetExec, "get-exec", false, "print only the stack command (for shell wrappers)")
	goCmd.MarkFlagsMutuallyExclusive("get-path", "get-exec")

	goCmd.AddGroup(&cobra.Group{ID: manageGroup.ID, Title: manageGroup.Title})
	goCmd.AddCommand(goAddCmd)
	goCmd.AddCommand(goListCmd)
	goCmd.AddCommand(goEditCmd)
	goCmd.AddCommand(goRemoveCmd)
}
