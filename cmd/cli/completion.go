// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"wicat/internal/config"
	"wicat/internal/records"
	"wicat/internal/store"

	"github.com/spf13/cobra"
)

// completionDir resolves the configuration directory for completion, where
// PersistentPreRunE has not run.
func completionDir() (string, bool) {
	dir, err := config.ResolveDir(configDirFlag)
	if err != nil {
		return "", false
	}
	return dir, true
}

// filterPrefix keeps the names starting with toComplete.
func filterPrefix(names []string, toComplete string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, toComplete) {
			out = append(out, n)
		}
	}
	return out
}

// dockerNameCompletionFunc completes stored docker command names.
func dockerNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, ok := completionDir()
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// Ignore read errors during completion
	names, _ := store.New[records.DockerCommand](config.DockerFile(dir)).Names()
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// stackNameCompletionFunc completes stored stack names.
func stackNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, ok := completionDir()
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	stacks, _ := store.New[records.Stack](config.StacksFile(dir)).Load()
	var suggestions []string
	for _, s := range stacks {
		if strings.HasPrefix(s.Name, toComplete) {
			suggestions = append(suggestions, s.Name+"\t"+s.Path)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// settingKeyCompletionFunc completes "config set" keys and boolean values.
func settingKeyCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return filterPrefix(config.SettingKeys, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		switch args[0] {
		case "clipboard":
			return filterPrefix([]string{"true", "false"}, toComplete), cobra.ShellCompDirectiveNoFileComp
		case "log_level":
			return filterPrefix([]string{"debug", "info", "warn", "error"}, toComplete), cobra.ShellCompDirectiveNoFileComp
		case "shell":
			return nil, cobra.ShellCompDirectiveDefault
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
