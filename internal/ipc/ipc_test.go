//go:build !windows

package ipc_test

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"tab/internal/clierr"
	"tab/internal/config"
	"tab/internal/ipc"
	"tab/internal/protocol"
	"tab/internal/testsupport"
)

func newClient(t *testing.T, socket string) *ipc.Client {
	t.Helper()
	cfg := config.Default()
	cfg.SocketPath = socket
	cfg.ConnectTimeoutMS = 1000
	cfg.CommandTimeoutMS = 1000
	return ipc.NewClient(&cfg, nil)
}

func navigateCommand(id string) protocol.Command {
	return protocol.Command{
		ID:        id,
		SessionID: "session-1",
		Type:      protocol.KindNavigate,
		Params:    []byte(`{"url":"https://example.com"}`),
		Timestamp: "2026-01-01T00:00:00Z",
	}
}

func TestProbeAgainstMissingSocket(t *testing.T) {
	client := newClient(t, filepath.Join(t.TempDir(), "absent.sock"))
	start := time.Now()
	if client.Probe(200 * time.Millisecond) {
		t.Fatal("probe reported a daemon on a missing socket")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("probe took %v, expected immediate failure", elapsed)
	}
}

func TestProbePingPong(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartDaemon(t, socket, testsupport.EchoDaemon())

	client := newClient(t, socket)
	if !client.Probe(time.Second) {
		t.Fatal("probe returned false against a live daemon")
	}
}

func TestProbeSwallowsMalformedReply(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartRawDaemon(t, socket, func(conn net.Conn) {
		defer conn.Close()
		_, _ = conn.Write([]byte("definitely not json\n"))
	})

	client := newClient(t, socket)
	if client.Probe(time.Second) {
		t.Fatal("probe returned true for garbage reply")
	}
}

func TestExchangeRoundTrip(t *testing.T) {
	socket := testsupport.SocketPath(t)
	received := make(chan protocol.Command, 1)
	testsupport.StartDaemon(t, socket, func(env protocol.Envelope) *protocol.Envelope {
		if env.Type != protocol.MessageCommand {
			t.Errorf("daemon received envelope type %q", env.Type)
			return nil
		}
		var cmd protocol.Command
		if err := testsupport.UnmarshalPayload(env, &cmd); err != nil {
			t.Errorf("unmarshal command: %v", err)
			return nil
		}
		received <- cmd
		reply, err := protocol.ResponseEnvelope(protocol.CommandResponse{ID: cmd.ID, Success: true})
		if err != nil {
			t.Errorf("build reply: %v", err)
			return nil
		}
		return &reply
	})

	client := newClient(t, socket)
	resp, err := client.Exchange(navigateCommand("cmd-1"))
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if resp.ID != "cmd-1" || !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}

	cmd := <-received
	if cmd.SessionID != "session-1" || cmd.Type != protocol.KindNavigate {
		t.Fatalf("daemon saw command %+v", cmd)
	}
}

func TestExchangeRejectsWrongEnvelopeType(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartDaemon(t, socket, func(protocol.Envelope) *protocol.Envelope {
		reply := protocol.Ping()
		return &reply
	})

	client := newClient(t, socket)
	_, err := client.Exchange(navigateCommand("cmd-2"))
	if !clierr.IsKind(err, clierr.Protocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestExchangeRejectsMissingPayload(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartRawDaemon(t, socket, func(conn net.Conn) {
		defer conn.Close()
		drainOneLine(conn)
		_, _ = conn.Write([]byte(`{"type":"response","payload":null}` + "\n"))
	})

	client := newClient(t, socket)
	_, err := client.Exchange(navigateCommand("cmd-3"))
	if !clierr.IsKind(err, clierr.Protocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestExchangeEmptyReply(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartRawDaemon(t, socket, func(conn net.Conn) {
		drainOneLine(conn)
		conn.Close()
	})

	client := newClient(t, socket)
	_, err := client.Exchange(navigateCommand("cmd-4"))
	if !clierr.IsKind(err, clierr.Protocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestExchangeTruncatedReply(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartRawDaemon(t, socket, func(conn net.Conn) {
		drainOneLine(conn)
		_, _ = conn.Write([]byte(`{"type":"resp`))
		conn.Close()
	})

	client := newClient(t, socket)
	_, err := client.Exchange(navigateCommand("cmd-5"))
	if !clierr.IsKind(err, clierr.Protocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestExchangeReadTimeout(t *testing.T) {
	socket := testsupport.SocketPath(t)
	testsupport.StartRawDaemon(t, socket, func(conn net.Conn) {
		defer conn.Close()
		drainOneLine(conn)
		time.Sleep(2 * time.Second)
	})

	cfg := config.Default()
	cfg.SocketPath = socket
	cfg.ConnectTimeoutMS = 500
	cfg.CommandTimeoutMS = 100
	client := ipc.NewClient(&cfg, nil)

	_, err := client.Exchange(navigateCommand("cmd-6"))
	if !clierr.IsKind(err, clierr.CommandTimeout) {
		t.Fatalf("expected command timeout, got %v", err)
	}
}

func drainOneLine(conn net.Conn) {
	buf := make([]byte, 1)
	for {
		if _, err := conn.Read(buf); err != nil || buf[0] == protocol.Delimiter {
			return
		}
	}
}
