package clierr

import (
	"errors"
	"fmt"
)

// Kind classifies a CLI failure. Each kind maps to a stable process exit
// code so scripts can branch on the failure class.
type Kind int

const (
	// CommandFailed means the command reached the daemon but failed there.
	CommandFailed Kind = iota
	// CommandTimeout means the command was sent but no reply arrived in time.
	CommandTimeout
	// DaemonNotRunning means the socket is absent, the daemon executable is
	// missing, or daemon startup timed out.
	DaemonNotRunning
	// ConnectionFailed means the socket exists but connecting or I/O failed.
	ConnectionFailed
	// ConnectionTimeout means the connect attempt did not complete in time.
	ConnectionTimeout
	// InvalidArguments covers input validation failures before any IPC.
	InvalidArguments
	// InvalidSession covers malformed session names before any IPC.
	InvalidSession
	// Serialization covers JSON encode/decode failures.
	Serialization
	// IO covers raw stream read/write failures.
	IO
	// Protocol covers malformed frames, wrong envelope kinds, and missing
	// payloads. Never retried; always a version-skew or bug signal.
	Protocol
)

func (k Kind) String() string {
	switch k {
	case CommandFailed:
		return "command failed"
	case CommandTimeout:
		return "command timed out"
	case DaemonNotRunning:
		return "daemon not running"
	case ConnectionFailed:
		return "connection failed"
	case ConnectionTimeout:
		return "connection timed out"
	case InvalidArguments:
		return "invalid arguments"
	case InvalidSession:
		return "invalid session"
	case Serialization:
		return "serialization error"
	case IO:
		return "io error"
	case Protocol:
		return "protocol error"
	default:
		return "error"
	}
}

// ExitCode returns the process exit code contract for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case CommandFailed, CommandTimeout:
		return 1
	case DaemonNotRunning:
		return 2
	case ConnectionFailed, ConnectionTimeout:
		return 3
	case InvalidArguments:
		return 64 // EX_USAGE
	case InvalidSession, Serialization:
		return 65 // EX_DATAERR
	case IO:
		return 74 // EX_IOERR
	case Protocol:
		return 76 // EX_PROTOCOL
	default:
		return 1
	}
}

// Error is a classified CLI failure with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New returns a classified error with a message and no cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under kind, prefixing it with a phase message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind == kind
	}
	return false
}

// ExitCode resolves the exit code for an arbitrary error. Unclassified
// errors fall back to the generic failure code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind.ExitCode()
	}
	return 1
}
