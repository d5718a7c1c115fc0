package daemonctl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"tab/internal/clierr"
	"tab/internal/config"
	"tab/internal/logging"
)

// Prober reports daemon liveness. Failures are already collapsed to false
// by the implementation, so polling code never handles errors.
type Prober interface {
	Probe(timeout time.Duration) bool
}

// Supervisor guarantees a reachable daemon before the first command of an
// invocation. It probes, spawns a detached daemon process when nothing
// answers, and polls until the daemon binds its address or a startup
// deadline passes.
type Supervisor struct {
	SocketPath     string
	DaemonBinary   string
	StartupTimeout time.Duration
	PollInterval   time.Duration
	ProbeTimeout   time.Duration

	prober Prober
	logger *slog.Logger

	// Test hooks; production code leaves them at their defaults.
	lookup func(name string) (string, error)
	spawn  func(path string, args []string) error
}

// New builds a supervisor from resolved configuration.
func New(cfg *config.Config, prober Prober, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Supervisor{
		SocketPath:     cfg.SocketPath,
		DaemonBinary:   cfg.DaemonBinary,
		StartupTimeout: cfg.StartupTimeout(),
		PollInterval:   100 * time.Millisecond,
		ProbeTimeout:   cfg.ConnectTimeout(),
		prober:         prober,
		logger:         logger,
		lookup:         exec.LookPath,
		spawn:          launch,
	}
}

// Ensure terminates with a live daemon or a DaemonNotRunning error. It
// never spawns when a probe already succeeds, and it never spawns twice:
// if a racing invocation's daemon binds the address mid-poll, the poll
// simply observes it. There is deliberately no spawn-lock; concurrent
// invocations racing to start the daemon is a benign race the daemon
// itself tolerates.
func (s *Supervisor) Ensure(ctx context.Context) error {
	if s.prober.Probe(s.ProbeTimeout) {
		s.logger.Debug("daemon already running", "socket", s.SocketPath)
		return nil
	}

	exe, err := s.locateExecutable()
	if err != nil {
		return clierr.Wrap(clierr.DaemonNotRunning, fmt.Sprintf("locate daemon executable %q", s.DaemonBinary), err)
	}

	s.logger.Debug("starting daemon", "executable", exe, "socket", s.SocketPath)
	if err := s.spawn(exe, []string{"--socket", s.SocketPath}); err != nil {
		return clierr.Wrap(clierr.DaemonNotRunning, "start daemon", err)
	}

	return s.waitReady(ctx)
}

// locateExecutable resolves the daemon binary: the directory containing
// the running CLI binary first, then the executable search path.
func (s *Supervisor) locateExecutable() (string, error) {
	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), s.DaemonBinary)
		if info, statErr := os.Stat(sibling); statErr == nil && !info.IsDir() {
			return sibling, nil
		}
	}
	return s.lookup(s.DaemonBinary)
}

func (s *Supervisor) waitReady(ctx context.Context) error {
	deadline := time.Now().Add(s.StartupTimeout)
	for {
		// A probe against a bound-but-hung socket blocks for its full
		// timeout; cap it at the time remaining so one slow probe cannot
		// overrun the startup deadline.
		probeTimeout := s.ProbeTimeout
		if remaining := time.Until(deadline); remaining < probeTimeout {
			probeTimeout = remaining
		}
		if probeTimeout > 0 && s.prober.Probe(probeTimeout) {
			s.logger.Debug("daemon ready", "socket", s.SocketPath)
			return nil
		}
		if time.Now().After(deadline) {
			return clierr.New(clierr.DaemonNotRunning, "daemon failed to start within timeout")
		}
		select {
		case <-ctx.Done():
			return clierr.Wrap(clierr.DaemonNotRunning, "wait for daemon", ctx.Err())
		case <-time.After(s.PollInterval):
		}
	}
}
