// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"

	"wicat/internal/stackflow"
	"wicat/internal/ui"
	"wicat/internal/uuidgen"
)

const (
	launchDocker = "docker"
	launchGo     = "go"
	launchUUIDs  = "uuids"
)

var launcherOptions = []ui.Option{
	{Value: launchDocker, Label: "🐳 Run a docker command"},
	{Value: launchGo, Label: "🚀 Go to a stack"},
	{Value: launchUUIDs, Label: "🔑 Generate UUIDs"},
}

// runLauncher is the interactive entry point used when wicat runs without arguments.
func runLauncher(ctx context.Context, a *app) error {
	choice, err := a.prompt.Select(ui.SelectPrompt{Label: "What do you want to do?", Options: launcherOptions})
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			ui.Cancelled(a.out)
			return nil
		}
		return err
	}

	switch choice {
	case launchDocker:
		return a.dockerFlow().Interactive(ctx)
	case launchGo:
		return a.stackFlow().Choose(ctx, stackflow.Options{})
	case launchUUIDs:
		return a.uuidFlow().Run(uuidgen.Request{Interactive: true, Copy: a.settings.ClipboardEnabled()})
	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
}
