// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wicat/internal/util"

	"github.com/spf13/cobra"
)

var shellInitCmd = &cobra.Command{
	Use:   "shell-init [bash|zsh|fish]",
	Short: "Print a shell function that really changes directory",
	Long: `A program cannot change the working directory of the shell that started it.
This prints a "wgo" function that asks "wicat go" for a stack's path, changes
into it, and with -e also runs the stack's command there.

Add it to your shell startup file:

  eval "$(wicat shell-init bash)"    # ~/.bashrc
  eval "$(wicat shell-init zsh)"     # ~/.zshrc
  wicat shell-init fish | source     # ~/.config/fish/config.fish`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var shell string
		if len(args) == 1 {
			shell = args[0]
		} else {
			shell = filepath.Base(os.Getenv("SHELL"))
		}
		return writeShellInit(cmd.OutOrStdout(), shell, configDirFlag)
	},
}

func writeShellInit(w io.Writer, shell, configDir string) error {
	invoke := "command wicat"
	if configDir != "" {
		invoke += " --config-dir " + util.QuoteArgForShell(configDir)
	}

	switch shell {
	case "bash", "zsh", "sh":
		_, err := fmt.Fprintf(w, posixInit, invoke)
		return err
	case "fish":
		_, err := fmt.Fprintf(w, fishInit, strings.TrimPrefix(invoke, "command "))
		return err
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", shell)
	}
}

const posixInit = `# wicat shell integration
wgo() {
  if [ -z "$1" ]; then
    %[1]s go
    return
  fi
  local dir cmd
  dir="$(%[1]s go "$1" --get-path)" || return $?
  cd "$dir" || return $?
  if [ "$2" = "-e" ] || [ "$2" = "--exec" ]; then
    cmd="$(%[1]s go "$1" --get-exec)" || return $?
    if [ -n "$cmd" ]; then
      eval "$cmd"
    fi
  fi
}
`

const fishInit = `# wicat shell integration
function wgo
    if test (count $argv) -eq 0
        command %[1]s go
        return
    end
    set -l dir (command %[1]s go $argv[1] --get-path); or return $status
    cd $dir; or return $status
    if contains -- $argv[2] -e --exec
        set -l cmd (command %[1]s go $argv[1] --get-exec); or return $status
        if test -n "$cmd"
            eval $cmd
        end
    end
end
`
