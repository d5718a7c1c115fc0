package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"tab/internal/clierr"
	"tab/internal/config"
	"tab/internal/logging"
	"tab/internal/protocol"
)

// Client speaks the framed envelope protocol with the daemon. Every
// operation dials a fresh connection; there is no pooling or reuse, and a
// connection carries exactly one request/reply pair.
type Client struct {
	socketPath     string
	connectTimeout time.Duration
	commandTimeout time.Duration
	logger         *slog.Logger
}

// NewClient builds a client from resolved configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		socketPath:     cfg.SocketPath,
		connectTimeout: cfg.ConnectTimeout(),
		commandTimeout: cfg.CommandTimeout(),
		logger:         logger,
	}
}

// SocketPath returns the address the client dials.
func (c *Client) SocketPath() string { return c.socketPath }

// Probe performs one ping/pong round trip and reports whether a live
// daemon answered. Every failure collapses to false: liveness polling must
// not conflate transient unavailability with fatal errors, so this method
// cannot return an error by construction.
func (c *Client) Probe(timeout time.Duration) bool {
	reply, err := c.roundTrip(protocol.Ping(), timeout, timeout)
	if err != nil {
		c.logger.Debug("probe failed", "socket", c.socketPath, "error", err)
		return false
	}
	return reply.Type == protocol.MessagePong
}

// Exchange sends one command and returns the daemon's response verbatim.
// No success/failure interpretation happens here; the caller decides what
// a failed response means.
func (c *Client) Exchange(cmd protocol.Command) (*protocol.CommandResponse, error) {
	env, err := protocol.CommandEnvelope(cmd)
	if err != nil {
		return nil, err
	}

	reply, err := c.roundTrip(env, c.connectTimeout, c.commandTimeout)
	if err != nil {
		return nil, err
	}

	if reply.Type != protocol.MessageResponse {
		return nil, clierr.Newf(clierr.Protocol, "unexpected response type %q", string(reply.Type))
	}
	if !reply.HasPayload() {
		return nil, clierr.New(clierr.Protocol, "missing response payload")
	}

	var resp protocol.CommandResponse
	if err := json.Unmarshal(reply.Payload, &resp); err != nil {
		return nil, clierr.Wrap(clierr.Serialization, "decode command response", err)
	}
	return &resp, nil
}

// roundTrip writes one envelope and reads one framed reply on a fresh
// connection. connectTimeout bounds the dial; ioTimeout bounds the write
// and the read via stream deadlines.
func (c *Client) roundTrip(env protocol.Envelope, connectTimeout, ioTimeout time.Duration) (protocol.Envelope, error) {
	conn, err := dial(c.socketPath, connectTimeout)
	if err != nil {
		return protocol.Envelope{}, err
	}
	defer conn.Close()

	deadline := time.Now().Add(ioTimeout)
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return protocol.Envelope{}, clierr.Wrap(clierr.IO, "set write deadline", err)
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return protocol.Envelope{}, clierr.Wrap(clierr.IO, "set read deadline", err)
	}

	frame, err := protocol.Encode(env)
	if err != nil {
		return protocol.Envelope{}, err
	}
	if _, err := conn.Write(frame); err != nil {
		if isTimeout(err) {
			return protocol.Envelope{}, clierr.Wrap(clierr.CommandTimeout, "write command", err)
		}
		return protocol.Envelope{}, clierr.Wrap(clierr.IO, "write command", err)
	}

	raw, err := readFrame(bufio.NewReader(conn))
	if err != nil {
		return protocol.Envelope{}, err
	}
	return protocol.Decode(raw)
}

// readFrame reads raw bytes up to and including the delimiter and returns
// them with the delimiter stripped. A peer that closes without sending
// anything, or mid-frame, is a protocol violation, not an I/O error.
func readFrame(reader *bufio.Reader) ([]byte, error) {
	data, err := reader.ReadBytes(protocol.Delimiter)
	switch {
	case err == nil:
		return data[:len(data)-1], nil
	case errors.Is(err, io.EOF):
		if len(data) == 0 {
			return nil, clierr.New(clierr.Protocol, "empty response")
		}
		return nil, clierr.New(clierr.Protocol, "missing message delimiter")
	case isTimeout(err):
		return nil, clierr.Wrap(clierr.CommandTimeout, "read response", err)
	default:
		return nil, clierr.Wrap(clierr.IO, "read response", err)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
