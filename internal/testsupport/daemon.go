//go:build !windows

package testsupport

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"tab/internal/protocol"
)

// Responder maps one received envelope to an optional reply. Returning nil
// closes the connection without writing anything.
type Responder func(protocol.Envelope) *protocol.Envelope

// EchoDaemon answers pings with pongs and commands with a successful
// response echoing the command id.
func EchoDaemon() Responder {
	return func(env protocol.Envelope) *protocol.Envelope {
		switch env.Type {
		case protocol.MessagePing:
			reply := protocol.Pong()
			return &reply
		case protocol.MessageCommand:
			var cmd protocol.Command
			if err := UnmarshalPayload(env, &cmd); err != nil {
				return nil
			}
			reply, err := protocol.ResponseEnvelope(protocol.CommandResponse{ID: cmd.ID, Success: true})
			if err != nil {
				return nil
			}
			return &reply
		default:
			return nil
		}
	}
}

// Server is a fake daemon listening on a Unix socket.
type Server struct {
	listener net.Listener
}

func (s *Server) Close() error { return s.listener.Close() }

// Serve starts a fake daemon on socket that serves one framed request per
// accepted connection using respond. Callers own the returned Server.
func Serve(socket string, respond Responder) (*Server, error) {
	return ServeRaw(socket, func(conn net.Conn) {
		defer conn.Close()
		line, err := bufio.NewReader(conn).ReadBytes(protocol.Delimiter)
		if err != nil {
			return
		}
		env, err := protocol.Decode(line[:len(line)-1])
		if err != nil {
			return
		}
		reply := respond(env)
		if reply == nil {
			return
		}
		frame, err := protocol.Encode(*reply)
		if err != nil {
			return
		}
		_, _ = conn.Write(frame)
	})
}

// ServeRaw starts a fake daemon that hands each accepted connection to
// handle, for byte-level control over replies.
func ServeRaw(socket string, handle func(net.Conn)) (*Server, error) {
	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go handle(conn)
		}
	}()
	return &Server{listener: listener}, nil
}

// StartDaemon is Serve bound to a test's lifetime.
func StartDaemon(t *testing.T, socket string, respond Responder) {
	t.Helper()
	srv, err := Serve(socket, respond)
	if err != nil {
		t.Fatalf("listen on %s: %v", socket, err)
	}
	t.Cleanup(func() { _ = srv.Close() })
}

// StartRawDaemon is ServeRaw bound to a test's lifetime.
func StartRawDaemon(t *testing.T, socket string, handle func(net.Conn)) {
	t.Helper()
	srv, err := ServeRaw(socket, handle)
	if err != nil {
		t.Fatalf("listen on %s: %v", socket, err)
	}
	t.Cleanup(func() { _ = srv.Close() })
}

// SocketPath returns a unique socket path under the test's temp directory.
func SocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tab.sock")
}

// UnmarshalPayload decodes an envelope payload into v.
func UnmarshalPayload(env protocol.Envelope, v any) error {
	return json.Unmarshal(env.Payload, v)
}
