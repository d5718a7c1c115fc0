package main

import (
	"github.com/spf13/cobra"

	"tab/internal/protocol"
)

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print an accessibility snapshot of the active tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, protocol.KindSnapshot, nil)
		},
	}
}
