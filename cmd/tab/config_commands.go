package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tab/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}
			if err := config.WriteSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
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

			out := cmd.OutOrStdout()
			if mode == outputJSON {
				return writeJSON(out, map[string]any{
					"configPath":       ctx.configPath,
					"socketPath":       cfg.SocketPath,
					"defaultSession":   cfg.DefaultSession,
					"daemonBinary":     cfg.DaemonBinary,
					"connectTimeoutMs": cfg.ConnectTimeoutMS,
					"commandTimeoutMs": cfg.CommandTimeoutMS,
					"startupTimeoutMs": cfg.StartupTimeoutMS,
					"logLevel":         cfg.LogLevel,
					"logFormat":        cfg.LogFormat,
				})
			}

			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			fmt.Fprintf(out, "Socket path: %s\n", cfg.SocketPath)
			fmt.Fprintf(out, "Default session: %s\n", cfg.DefaultSession)
			fmt.Fprintf(out, "Daemon binary: %s\n", cfg.DaemonBinary)
			fmt.Fprintf(out, "Connect timeout: %s\n", cfg.ConnectTimeout())
			fmt.Fprintf(out, "Command timeout: %s\n", cfg.CommandTimeout())
			fmt.Fprintf(out, "Startup timeout: %s\n", cfg.StartupTimeout())
			fmt.Fprintf(out, "Log level: %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "Log format: %s\n", cfg.LogFormat)
			return nil
		},
	}
}
