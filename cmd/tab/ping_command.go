package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/ipc"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check whether the daemon is running",
		Long:  "Probe the daemon socket once. Never starts a daemon; a dead daemon is the answer, not a problem to fix.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := ctx.outputMode()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cfg)
			if err != nil {
				return err
			}

			client := ipc.NewClient(cfg, logger)
			if !client.Probe(cfg.ConnectTimeout()) {
				return clierr.New(clierr.DaemonNotRunning, "daemon is not responding")
			}

			switch mode {
			case outputJSON:
				return writeJSON(cmd.OutOrStdout(), map[string]bool{"running": true})
			case outputHuman:
				fmt.Fprintln(cmd.OutOrStdout(), "Daemon is running")
			}
			return nil
		},
	}
}
