// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import (
	"runtime"
	"strings"
)

// QuoteArgForShell quotes an argument for safe use in a POSIX shell command.
// It uses single quotes and escapes any internal single quotes.
func QuoteArgForShell(arg string) string {
	quotedArg := strings.ReplaceAll(arg, "'", `'\''`)
	return `'` + quotedArg + `'`
}

// CdCommand renders the instruction a user pastes to move into path.
// Plain paths are double-quoted; paths holding characters the shell would
// interpret inside double quotes fall back to single quoting.
func CdCommand(path string) string {
	if runtime.GOOS == "windows" || !strings.ContainsAny(path, "\"$`\\") {
		return `cd "` + path + `"`
	}
	return "cd " + QuoteArgForShell(path)
}
