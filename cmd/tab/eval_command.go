package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/protocol"
)

type evalParams struct {
	Script string `json:"script"`
}

func newEvalCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eval SCRIPT",
		Short: "Evaluate JavaScript in the active tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.TrimSpace(args[0])
			if script == "" {
				return clierr.New(clierr.InvalidArguments, "script is empty")
			}
			return ctx.run(cmd, protocol.KindEval, evalParams{Script: script})
		},
	}
}
