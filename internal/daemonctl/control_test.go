package daemonctl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tab/internal/clierr"
	"tab/internal/config"
)

// scriptedProber returns false until alive flips true.
type scriptedProber struct {
	aliveAfter int
	calls      int
}

func (p *scriptedProber) Probe(time.Duration) bool {
	p.calls++
	return p.calls > p.aliveAfter
}

func newTestSupervisor(prober Prober) *Supervisor {
	cfg := config.Default()
	cfg.SocketPath = "/tmp/tab-test.sock"
	s := New(&cfg, prober, nil)
	s.PollInterval = time.Millisecond
	s.StartupTimeout = time.Second
	s.ProbeTimeout = 10 * time.Millisecond
	return s
}

func TestEnsureAliveDaemonSkipsSpawn(t *testing.T) {
	spawns := 0
	s := newTestSupervisor(&scriptedProber{aliveAfter: 0})
	s.spawn = func(string, []string) error { spawns++; return nil }

	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if spawns != 0 {
		t.Fatalf("spawned %d times against a live daemon", spawns)
	}
}

func TestEnsureSpawnsOnceAndPollsUntilReady(t *testing.T) {
	spawns := 0
	var spawnedPath string
	var spawnedArgs []string

	// Dead for the initial probe and three polls, then alive.
	s := newTestSupervisor(&scriptedProber{aliveAfter: 4})
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(path string, args []string) error {
		spawns++
		spawnedPath = path
		spawnedArgs = args
		return nil
	}

	if err := s.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if spawns != 1 {
		t.Fatalf("spawned %d times, want 1", spawns)
	}
	if spawnedPath != "/opt/tab/"+s.DaemonBinary {
		t.Fatalf("spawned %q", spawnedPath)
	}
	if len(spawnedArgs) != 2 || spawnedArgs[0] != "--socket" || spawnedArgs[1] != s.SocketPath {
		t.Fatalf("spawn args %v", spawnedArgs)
	}
}

func TestEnsureMissingExecutable(t *testing.T) {
	spawns := 0
	s := newTestSupervisor(&scriptedProber{aliveAfter: 1 << 30})
	s.lookup = func(name string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	}
	s.spawn = func(string, []string) error { spawns++; return nil }

	err := s.Ensure(context.Background())
	if !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatalf("expected daemon-not-running, got %v", err)
	}
	if spawns != 0 {
		t.Fatal("spawned despite missing executable")
	}
}

func TestEnsureSpawnFailure(t *testing.T) {
	s := newTestSupervisor(&scriptedProber{aliveAfter: 1 << 30})
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(string, []string) error { return errors.New("fork failed") }

	if err := s.Ensure(context.Background()); !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatalf("expected daemon-not-running, got %v", err)
	}
}

func TestEnsureStartupTimeoutIsBounded(t *testing.T) {
	s := newTestSupervisor(&scriptedProber{aliveAfter: 1 << 30})
	s.StartupTimeout = 50 * time.Millisecond
	s.PollInterval = 10 * time.Millisecond
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(string, []string) error { return nil }

	start := time.Now()
	err := s.Ensure(context.Background())
	elapsed := time.Since(start)

	if !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatalf("expected daemon-not-running, got %v", err)
	}
	if got := err.Error(); got != "daemon not running: daemon failed to start within timeout" {
		t.Fatalf("unexpected message: %q", got)
	}
	// Deadline plus one poll interval, with scheduling slack.
	if elapsed > s.StartupTimeout+s.PollInterval+500*time.Millisecond {
		t.Fatalf("Ensure blocked for %v", elapsed)
	}
}

// hangingProber blocks for the full timeout it is given, like a connect
// against a socket that is bound but never answers.
type hangingProber struct {
	mu       sync.Mutex
	timeouts []time.Duration
}

func (p *hangingProber) Probe(timeout time.Duration) bool {
	p.mu.Lock()
	p.timeouts = append(p.timeouts, timeout)
	p.mu.Unlock()
	time.Sleep(timeout)
	return false
}

func (p *hangingProber) recorded() []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]time.Duration(nil), p.timeouts...)
}

func TestEnsureCapsProbesAtStartupDeadline(t *testing.T) {
	prober := &hangingProber{}
	s := newTestSupervisor(prober)
	s.ProbeTimeout = 500 * time.Millisecond
	s.StartupTimeout = 100 * time.Millisecond
	s.PollInterval = 10 * time.Millisecond
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(string, []string) error { return nil }

	start := time.Now()
	err := s.Ensure(context.Background())
	elapsed := time.Since(start)

	if !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatalf("expected daemon-not-running, got %v", err)
	}

	// The liveness check before the spawn uses the full probe timeout;
	// every probe inside the startup wait must fit the deadline.
	timeouts := prober.recorded()
	if len(timeouts) < 2 {
		t.Fatalf("probe calls: %v", timeouts)
	}
	for _, timeout := range timeouts[1:] {
		if timeout > s.StartupTimeout {
			t.Fatalf("startup probe allowed %v, deadline only had %v", timeout, s.StartupTimeout)
		}
	}
	if elapsed > s.ProbeTimeout+s.StartupTimeout+s.PollInterval+time.Second {
		t.Fatalf("Ensure blocked for %v", elapsed)
	}
}

func TestEnsureHonoursContextCancellation(t *testing.T) {
	s := newTestSupervisor(&scriptedProber{aliveAfter: 1 << 30})
	s.StartupTimeout = 10 * time.Second
	s.PollInterval = 20 * time.Millisecond
	s.lookup = func(name string) (string, error) { return "/opt/tab/" + name, nil }
	s.spawn = func(string, []string) error { return nil }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := s.Ensure(ctx)
	if err == nil {
		t.Fatal("Ensure succeeded despite cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation in chain, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancellation took %v", time.Since(start))
	}
}
