package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tab/internal/clierr"
	"tab/internal/config"
	"tab/internal/daemonctl"
	"tab/internal/dispatch"
	"tab/internal/ipc"
	"tab/internal/logging"
	"tab/internal/protocol"
	"tab/internal/session"
)

// commandContext carries the persistent flag values and lazily resolved
// configuration shared by every subcommand. Config loads at most once per
// invocation, on first use.
type commandContext struct {
	sessionFlag *string
	profileFlag *string
	socketFlag  *string
	configFlag  *string
	outputFlag  *string
	debugFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(sessionFlag, profileFlag, socketFlag, configFlag, outputFlag *string, debugFlag *bool) *commandContext {
	return &commandContext{
		sessionFlag: sessionFlag,
		profileFlag: profileFlag,
		socketFlag:  socketFlag,
		configFlag:  configFlag,
		outputFlag:  outputFlag,
		debugFlag:   debugFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(*c.configFlag)
		cfg, resolvedPath, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		// The flag outranks the environment and the file; its value is
		// used verbatim.
		if socket := strings.TrimSpace(*c.socketFlag); socket != "" {
			cfg.SocketPath = socket
		}
		c.config = cfg
		c.configPath = resolvedPath
	})
	return c.config, c.configErr
}

func (c *commandContext) outputMode() (outputMode, error) {
	return parseOutputMode(*c.outputFlag)
}

// logger returns a debug logger on stderr when --debug is set, otherwise a
// no-op logger. Log output never mixes with command results on stdout.
func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	if !*c.debugFlag {
		return logging.NewNop(), nil
	}
	return logging.New(logging.Options{
		Level:  "debug",
		Format: cfg.LogFormat,
		Writer: os.Stderr,
	})
}

// dispatcher wires the full command path: config, session resolution,
// IPC client, and daemon supervisor.
func (c *commandContext) dispatcher() (*dispatch.Dispatcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	resolver := session.NewResolver(cfg)
	sessionName := resolver.Session(strings.TrimSpace(*c.sessionFlag))
	if err := session.ValidateName(sessionName); err != nil {
		return nil, err
	}
	profile := resolver.Profile(strings.TrimSpace(*c.profileFlag))

	logger, err := c.logger(cfg)
	if err != nil {
		return nil, err
	}

	client := ipc.NewClient(cfg, logger)
	supervisor := daemonctl.New(cfg, client, logger)
	return dispatch.New(client, supervisor.Ensure, sessionName, profile), nil
}

// run dispatches one command and renders its result. A response the daemon
// marks unsuccessful becomes a command-failed error carrying the daemon's
// message.
func (c *commandContext) run(cmd *cobra.Command, kind protocol.CommandKind, params any) error {
	mode, err := c.outputMode()
	if err != nil {
		return err
	}

	d, err := c.dispatcher()
	if err != nil {
		return err
	}

	resp, err := d.Dispatch(cmd.Context(), kind, params)
	if err != nil {
		return err
	}
	if !resp.Success {
		message := strings.TrimSpace(resp.Error)
		if message == "" {
			message = "command failed"
		}
		return clierr.New(clierr.CommandFailed, message)
	}

	return renderResult(cmd.OutOrStdout(), mode, resp.Data)
}
