package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"tab/internal/clierr"
	"tab/internal/protocol"
)

// Exchanger sends one command and returns the daemon's reply.
type Exchanger interface {
	Exchange(cmd protocol.Command) (*protocol.CommandResponse, error)
}

// EnsureFunc guarantees a reachable daemon, spawning one if needed.
type EnsureFunc func(ctx context.Context) error

// Dispatcher is the single entry point every command implementation uses.
// It stamps identity, session, profile, and timestamp metadata onto a
// command and hands it to the IPC client; errors propagate unchanged and
// nothing is retried.
type Dispatcher struct {
	client  Exchanger
	ensure  EnsureFunc
	session string
	profile string

	ensureOnce sync.Once
	ensureErr  error

	// Test hooks; production values are uuid and the wall clock.
	newID func() string
	now   func() time.Time
}

// New builds a dispatcher for one resolved session/profile pair. ensure
// may be nil when the caller knows a daemon is reachable.
func New(client Exchanger, ensure EnsureFunc, sessionID, profile string) *Dispatcher {
	return &Dispatcher{
		client:  client,
		ensure:  ensure,
		session: sessionID,
		profile: profile,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// Dispatch builds and sends one command of the given kind. params may be
// nil, a json.RawMessage, or any JSON-marshalable value; a payload with no
// fields is omitted from the wire entirely.
func (d *Dispatcher) Dispatch(ctx context.Context, kind protocol.CommandKind, params any) (*protocol.CommandResponse, error) {
	if !kind.Valid() {
		return nil, clierr.Newf(clierr.InvalidArguments, "unknown command kind %q", string(kind))
	}

	raw, err := normalizeParams(params)
	if err != nil {
		return nil, err
	}

	// A daemon is ensured at most once per invocation, on the first
	// command dispatched.
	d.ensureOnce.Do(func() {
		if d.ensure != nil {
			d.ensureErr = d.ensure(ctx)
		}
	})
	if d.ensureErr != nil {
		return nil, d.ensureErr
	}

	cmd := protocol.Command{
		ID:        d.newID(),
		SessionID: d.session,
		Profile:   d.profile,
		Type:      kind,
		Params:    raw,
		Timestamp: d.now().UTC().Format(time.RFC3339),
	}
	return d.client.Exchange(cmd)
}

// normalizeParams marshals params and collapses "no fields" to "no
// parameters" so the daemon can tell the two apart per the wire contract.
func normalizeParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	var raw json.RawMessage
	if existing, ok := params.(json.RawMessage); ok {
		raw = existing
	} else {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, clierr.Wrap(clierr.Serialization, "marshal command params", err)
		}
		raw = data
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	return raw, nil
}
