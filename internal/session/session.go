package session

import (
	"os"

	"tab/internal/clierr"
	"tab/internal/config"
)

const maxNameLength = 64

// Resolver picks the session and profile for an invocation. Precedence is
// explicit flag, then environment variable, then the configured default;
// profiles have no compiled-in default (absent means the browser's default
// profile).
type Resolver struct {
	defaultSession string
}

// NewResolver builds a resolver from resolved configuration.
func NewResolver(cfg *config.Config) Resolver {
	return Resolver{defaultSession: cfg.DefaultSession}
}

// Session resolves the session name for this invocation.
func (r Resolver) Session(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(config.EnvSession); env != "" {
		return env
	}
	return r.defaultSession
}

// Profile resolves the profile directory, or "" for the default profile.
func (r Resolver) Profile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(config.EnvProfile)
}

// ValidateName rejects session names the daemon cannot partition state on:
// empty, longer than 64 characters, or containing anything beyond
// alphanumerics, dashes, and underscores.
func ValidateName(name string) error {
	if name == "" {
		return clierr.New(clierr.InvalidSession, "session name is empty")
	}
	if len(name) > maxNameLength {
		return clierr.Newf(clierr.InvalidSession, "session name exceeds %d characters", maxNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return clierr.Newf(clierr.InvalidSession, "session name contains invalid character %q", r)
		}
	}
	return nil
}
