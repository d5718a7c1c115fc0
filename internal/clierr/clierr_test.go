package clierr_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"tab/internal/clierr"
)

func TestExitCodes(t *testing.T) {
	cases := []struct {
		kind clierr.Kind
		want int
	}{
		{clierr.CommandFailed, 1},
		{clierr.CommandTimeout, 1},
		{clierr.DaemonNotRunning, 2},
		{clierr.ConnectionFailed, 3},
		{clierr.ConnectionTimeout, 3},
		{clierr.InvalidArguments, 64},
		{clierr.InvalidSession, 65},
		{clierr.Serialization, 65},
		{clierr.IO, 74},
		{clierr.Protocol, 76},
	}
	for _, tc := range cases {
		if got := tc.kind.ExitCode(); got != tc.want {
			t.Errorf("%s: exit code %d, want %d", tc.kind, got, tc.want)
		}
		if got := clierr.ExitCode(clierr.New(tc.kind, "boom")); got != tc.want {
			t.Errorf("%s: ExitCode(err) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestExitCodeUnclassified(t *testing.T) {
	if got := clierr.ExitCode(errors.New("plain")); got != 1 {
		t.Fatalf("unclassified error exit code = %d, want 1", got)
	}
	if got := clierr.ExitCode(nil); got != 0 {
		t.Fatalf("nil error exit code = %d, want 0", got)
	}
}

func TestExitCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", clierr.New(clierr.DaemonNotRunning, "socket not found"))
	if got := clierr.ExitCode(err); got != 2 {
		t.Fatalf("wrapped exit code = %d, want 2", got)
	}
	if !clierr.IsKind(err, clierr.DaemonNotRunning) {
		t.Fatal("IsKind should see through fmt.Errorf wrapping")
	}
	if clierr.IsKind(err, clierr.Protocol) {
		t.Fatal("IsKind matched the wrong kind")
	}
}

func TestErrorMessageShapes(t *testing.T) {
	if got := clierr.New(clierr.DaemonNotRunning, "socket not found at /tmp/x").Error(); got != "daemon not running: socket not found at /tmp/x" {
		t.Fatalf("unexpected message: %q", got)
	}
	wrapped := clierr.Wrap(clierr.IO, "read frame", io.ErrUnexpectedEOF)
	if got := wrapped.Error(); got != "io error: read frame: unexpected EOF" {
		t.Fatalf("unexpected wrapped message: %q", got)
	}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Fatal("wrapped cause should be reachable via errors.Is")
	}
}
