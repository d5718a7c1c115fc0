//go:build !windows

package daemonctl

import (
	"context"
	"testing"
	"time"

	"tab/internal/clierr"
	"tab/internal/config"
	"tab/internal/ipc"
	"tab/internal/testsupport"
)

// A listener already answering pings must satisfy Ensure without any
// spawn attempt, regardless of who started it.
func TestEnsureAgainstPreboundListener(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartDaemon(t, socket, testsupport.EchoDaemon())

	cfg := config.Default()
	cfg.SocketPath = socket
	cfg.ConnectTimeoutMS = 500

	spawns := 0
	s := New(&cfg, ipc.NewClient(&cfg, nil), nil)
	s.spawn = func(string, []string) error { spawns++; return nil }

	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if spawns != 0 {
		t.Fatalf("spawned %d times with a responsive listener prebound", spawns)
	}
}

// The spawn succeeds but the "daemon" never binds its address: Ensure must
// give up with DaemonNotRunning instead of waiting forever.
func TestEnsureSpawnedDaemonNeverBinds(t *testing.T) {
	cfg := config.Default()
	cfg.SocketPath = testsupport.SocketPath(t)
	cfg.ConnectTimeoutMS = 100

	s := New(&cfg, ipc.NewClient(&cfg, nil), nil)
	s.StartupTimeout = 200 * time.Millisecond
	s.PollInterval = 20 * time.Millisecond
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(string, []string) error { return nil }

	start := time.Now()
	err := s.Ensure(context.Background())
	if !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatalf("expected daemon-not-running, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > s.StartupTimeout+s.PollInterval+time.Second {
		t.Fatalf("Ensure blocked for %v", elapsed)
	}
}

// A daemon that binds the socket while the supervisor is polling (for
// example one spawned by a racing invocation) ends the wait.
func TestEnsureObservesDaemonBoundMidPoll(t *testing.T) {
	socket := testsupport.SocketPath(t)
	cfg := config.Default()
	cfg.SocketPath = socket
	cfg.ConnectTimeoutMS = 200

	spawns := 0
	s := New(&cfg, ipc.NewClient(&cfg, nil), nil)
	s.StartupTimeout = 5 * time.Second
	s.PollInterval = 20 * time.Millisecond
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	bound := make(chan *testsupport.Server, 1)
	s.spawn = func(string, []string) error {
		spawns++
		// Simulate a racing invocation winning the bind after a delay.
		go func() {
			time.Sleep(100 * time.Millisecond)
			srv, err := testsupport.Serve(socket, testsupport.EchoDaemon())
			if err != nil {
				return
			}
			bound <- srv
		}()
		return nil
	}
	t.Cleanup(func() {
		select {
		case srv := <-bound:
			_ = srv.Close()
		default:
		}
	})

	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if spawns != 1 {
		t.Fatalf("spawned %d times", spawns)
	}
}
