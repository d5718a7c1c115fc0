package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"tab/internal/clierr"
)

//go:embed sample_config.toml
var sampleConfig string

// Environment variables honoured at load and resolution time.
const (
	// EnvSocketPath overrides the daemon socket or pipe address.
	EnvSocketPath = "TAB_SOCKET_PATH"
	// EnvSession overrides the session name.
	EnvSession = "TAB_SESSION"
	// EnvProfile overrides the browser profile directory.
	EnvProfile = "TAB_PROFILE"
)

// DefaultSessionName is the compiled-in session fallback.
const DefaultSessionName = "default"

// Config centralizes every knob the CLI needs: where the daemon listens,
// which session commands target by default, and how long each phase of an
// exchange may take.
type Config struct {
	SocketPath       string `toml:"socket_path"`
	DefaultSession   string `toml:"default_session"`
	DaemonBinary     string `toml:"daemon_binary"`
	ConnectTimeoutMS int    `toml:"connect_timeout_ms"`
	CommandTimeoutMS int    `toml:"command_timeout_ms"`
	StartupTimeoutMS int    `toml:"startup_timeout_ms"`
	LogLevel         string `toml:"log_level"`
	LogFormat        string `toml:"log_format"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		SocketPath:       defaultSocketPath,
		DefaultSession:   DefaultSessionName,
		DaemonBinary:     defaultDaemonBinary,
		ConnectTimeoutMS: 5000,
		CommandTimeoutMS: 30000,
		StartupTimeoutMS: 10000,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMS) * time.Millisecond
}

func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutMS) * time.Millisecond
}

func (c *Config) StartupTimeout() time.Duration {
	return time.Duration(c.StartupTimeoutMS) * time.Millisecond
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/tab/config.toml")
}

// Load locates and parses a configuration file, then applies environment
// overrides. An empty path selects the default location; a missing file is
// not an error and yields defaults. Returns the config, the resolved file
// path, and whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, clierr.Wrap(clierr.InvalidArguments, "parse config", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Socket address precedence below the --socket flag: environment, then
// file, then compiled-in default. Session and profile environment
// variables are resolved later, in the session package, so the precedence
// against explicit flags stays in one place.
func (c *Config) applyEnv() {
	if socket := strings.TrimSpace(os.Getenv(EnvSocketPath)); socket != "" {
		c.SocketPath = socket
	}
}

func (c *Config) normalize() error {
	c.SocketPath = strings.TrimSpace(c.SocketPath)
	c.DefaultSession = strings.TrimSpace(c.DefaultSession)
	c.DaemonBinary = strings.TrimSpace(c.DaemonBinary)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if c.SocketPath == "" {
		c.SocketPath = defaultSocketPath
	}
	if c.DefaultSession == "" {
		c.DefaultSession = DefaultSessionName
	}
	if c.DaemonBinary == "" {
		c.DaemonBinary = defaultDaemonBinary
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}

	expanded, err := expandSocketPath(c.SocketPath)
	if err != nil {
		return err
	}
	c.SocketPath = expanded
	return nil
}

// Validate rejects configurations that cannot drive an exchange.
func (c *Config) Validate() error {
	if c.ConnectTimeoutMS <= 0 {
		return clierr.Newf(clierr.InvalidArguments, "connect_timeout_ms must be positive, got %d", c.ConnectTimeoutMS)
	}
	if c.CommandTimeoutMS <= 0 {
		return clierr.Newf(clierr.InvalidArguments, "command_timeout_ms must be positive, got %d", c.CommandTimeoutMS)
	}
	if c.StartupTimeoutMS <= 0 {
		return clierr.Newf(clierr.InvalidArguments, "startup_timeout_ms must be positive, got %d", c.StartupTimeoutMS)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return clierr.Newf(clierr.InvalidArguments, "log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories. Fails if the file already exists.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading tilde against the user's home directory and
// returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}
