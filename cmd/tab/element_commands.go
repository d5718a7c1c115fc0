package main

import (
	"strings"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/protocol"
)

type clickParams struct {
	Ref string `json:"ref"`
}

type typeParams struct {
	Ref  string `json:"ref"`
	Text string `json:"text"`
}

type scrollParams struct {
	Direction string `json:"direction"`
	Ref       string `json:"ref,omitempty"`
	Amount    int    `json:"amount,omitempty"`
}

func newClickCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "click REF",
		Short: "Click an element by its snapshot reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := validateRef(args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, protocol.KindClick, clickParams{Ref: ref})
		},
	}
}

func newTypeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "type REF TEXT",
		Short: "Type text into an element by its snapshot reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := validateRef(args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, protocol.KindType, typeParams{Ref: ref, Text: args[1]})
		},
	}
}

func newScrollCommand(ctx *commandContext) *cobra.Command {
	var refFlag string
	var amountFlag int

	cmd := &cobra.Command{
		Use:   "scroll DIRECTION",
		Short: "Scroll the page or an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := parseScrollDirection(args[0])
			if err != nil {
				return err
			}
			params := scrollParams{Direction: direction, Amount: amountFlag}
			if ref := strings.TrimSpace(refFlag); ref != "" {
				params.Ref = ref
			}
			return ctx.run(cmd, protocol.KindScroll, params)
		},
	}

	cmd.Flags().StringVar(&refFlag, "ref", "", "Scroll a specific element instead of the page")
	cmd.Flags().IntVar(&amountFlag, "amount", 0, "Scroll distance in pixels (0 uses the daemon default)")
	return cmd
}

func validateRef(raw string) (string, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", clierr.New(clierr.InvalidArguments, "element ref is empty")
	}
	return ref, nil
}

func parseScrollDirection(raw string) (string, error) {
	direction := strings.ToLower(strings.TrimSpace(raw))
	switch direction {
	case "up", "down", "left", "right":
		return direction, nil
	default:
		return "", clierr.Newf(clierr.InvalidArguments, "unknown scroll direction %q (expected up, down, left, or right)", raw)
	}
}
