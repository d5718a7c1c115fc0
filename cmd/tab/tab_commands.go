package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/protocol"
)

type tabNewParams struct {
	URL string `json:"url,omitempty"`
}

type tabSwitchParams struct {
	TabID string `json:"tabId"`
}

func newTabCommand(ctx *commandContext) *cobra.Command {
	tabCmd := &cobra.Command{
		Use:   "tab",
		Short: "Manage browser tabs",
	}

	tabCmd.AddCommand(&cobra.Command{
		Use:   "new [URL]",
		Short: "Open a new tab, optionally at a URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params tabNewParams
			if len(args) == 1 {
				url, err := normalizeURL(args[0])
				if err != nil {
					return err
				}
				params.URL = url
			}
			return ctx.run(cmd, protocol.KindTabNew, params)
		},
	})

	tabCmd.AddCommand(&cobra.Command{
		Use:   "close",
		Short: "Close the active tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, protocol.KindTabClose, nil)
		},
	})

	tabCmd.AddCommand(&cobra.Command{
		Use:   "switch ID",
		Short: "Switch to a tab by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return clierr.New(clierr.InvalidArguments, "tab id is empty")
			}
			return ctx.run(cmd, protocol.KindTabSwitch, tabSwitchParams{TabID: id})
		},
	})

	tabCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List open tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, protocol.KindTabList, nil)
		},
	})

	return tabCmd
}
