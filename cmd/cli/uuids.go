// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strconv"

	"wicat/internal/uuidgen"

	"github.com/spf13/cobra"
)

var (
	uuidCount  string
	uuidNoCopy bool
)

var uuidsCmd = &cobra.Command{
	Use:     "uuids",
	Aliases: []string{"uuid"},
	Short:   "Generate random v4 UUIDs",
	Long: `Generates between 1 and 10000 random (version 4) UUIDs and copies them to the
clipboard, one per line. Batches of 10 or fewer are also printed.
Without --count the amount is asked for interactively.`,
	Example: `  wicat uuids
  wicat uuids -c 50
  wicat uuids -c 5 --no-copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return env.uuidFlow().Run(uuidgen.Request{
			CountText:   uuidCount,
			Interactive: !cmd.Flags().Changed("count"),
			Copy:        !uuidNoCopy && env.settings.ClipboardEnabled(),
		})
	},
}

func init() {
	uuidsCmd.Flags().StringVarP(&uuidCount, "count", "c", strconv.Itoa(uuidgen.MinCount), "number of UUIDs to generate (1-10000)")
	uuidsCmd.Flags().BoolVar(&uuidNoCopy, "no-copy", false, "do not copy the result to the clipboard")
}
