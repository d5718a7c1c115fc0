package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var sessionFlag string
	var profileFlag string
	var socketFlag string
	var configFlag string
	var outputFlag string
	var debugFlag bool

	ctx := newCommandContext(&sessionFlag, &profileFlag, &socketFlag, &configFlag, &outputFlag, &debugFlag)

	rootCmd := &cobra.Command{
		Use:           "tab",
		Short:         "Drive a browser from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "Session name to target")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Browser profile directory")
	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Path to the daemon socket")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "human", "Output format: human, json, or quiet")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(newNavigateCommand(ctx))
	rootCmd.AddCommand(newBackCommand(ctx))
	rootCmd.AddCommand(newForwardCommand(ctx))
	rootCmd.AddCommand(newSnapshotCommand(ctx))
	rootCmd.AddCommand(newClickCommand(ctx))
	rootCmd.AddCommand(newTypeCommand(ctx))
	rootCmd.AddCommand(newScrollCommand(ctx))
	rootCmd.AddCommand(newTabCommand(ctx))
	rootCmd.AddCommand(newEvalCommand(ctx))
	rootCmd.AddCommand(newPingCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
