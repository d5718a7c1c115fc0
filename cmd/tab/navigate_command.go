package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/protocol"
)

type navigateParams struct {
	URL string `json:"url"`
}

func newNavigateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "navigate URL",
		Short: "Navigate the active tab to a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := normalizeURL(args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, protocol.KindNavigate, navigateParams{URL: url})
		},
	}
}

func newBackCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Go back in the active tab's history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, protocol.KindBack, nil)
		},
	}
}

func newForwardCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "forward",
		Short: "Go forward in the active tab's history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, protocol.KindForward, nil)
		},
	}
}

// normalizeURL validates a navigation target and defaults the scheme to
// https. Browser-internal schemes are rejected; the daemon must never be
// pointed at its own settings surface.
func normalizeURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", clierr.New(clierr.InvalidArguments, "url is empty")
	}
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "chrome://") || strings.HasPrefix(lower, "about:") {
		return "", clierr.Newf(clierr.InvalidArguments, "browser-internal urls are not allowed: %s", url)
	}
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	return url, nil
}
