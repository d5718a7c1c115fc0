package protocol

import (
	"bytes"
	"encoding/json"

	"tab/internal/clierr"
)

// Delimiter terminates every frame on the wire. The JSON encoder escapes
// control characters, so a serialized envelope can never contain a raw
// newline.
const Delimiter byte = '\n'

// MessageType discriminates wire envelopes.
type MessageType string

const (
	MessageCommand  MessageType = "command"
	MessageResponse MessageType = "response"
	MessagePing     MessageType = "ping"
	MessagePong     MessageType = "pong"
)

// Envelope is the outermost wire structure. Ping and pong carry a null
// payload; command and response nest a Command or CommandResponse.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// HasPayload reports whether the envelope carries a non-null payload.
func (e Envelope) HasPayload() bool {
	trimmed := bytes.TrimSpace(e.Payload)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Command is one client request. Profile and Params are omitted from the
// wire entirely when absent so the daemon can distinguish "no params" from
// "empty params".
type Command struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	Profile   string          `json:"profile,omitempty"`
	Type      CommandKind     `json:"type"`
	Params    json.RawMessage `json:"params,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// CommandResponse is the daemon's reply to one Command. ID echoes the
// originating command. Data is present only on success, Error only on
// failure.
type CommandResponse struct {
	ID      string          `json:"id"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Ping returns the liveness-probe envelope.
func Ping() Envelope {
	return Envelope{Type: MessagePing}
}

// Pong returns the liveness-probe reply envelope.
func Pong() Envelope {
	return Envelope{Type: MessagePong}
}

// CommandEnvelope wraps cmd in a command-typed envelope.
func CommandEnvelope(cmd Command) (Envelope, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return Envelope{}, clierr.Wrap(clierr.Serialization, "marshal command", err)
	}
	return Envelope{Type: MessageCommand, Payload: payload}, nil
}

// ResponseEnvelope wraps resp in a response-typed envelope.
func ResponseEnvelope(resp CommandResponse) (Envelope, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return Envelope{}, clierr.Wrap(clierr.Serialization, "marshal response", err)
	}
	return Envelope{Type: MessageResponse, Payload: payload}, nil
}

// Encode serializes env as one compact JSON object followed by the frame
// delimiter.
func Encode(env Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, clierr.Wrap(clierr.Serialization, "encode envelope", err)
	}
	return append(data, Delimiter), nil
}

// Decode parses one frame (delimiter already stripped) into an Envelope.
// Unparseable bytes and unknown or missing type discriminants fail with a
// protocol error; Decode never panics on hostile input.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, clierr.Wrap(clierr.Protocol, "malformed message", err)
	}
	switch env.Type {
	case MessageCommand, MessageResponse, MessagePing, MessagePong:
		return env, nil
	default:
		return Envelope{}, clierr.Newf(clierr.Protocol, "malformed message: unknown message type %q", string(env.Type))
	}
}
