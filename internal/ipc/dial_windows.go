//go:build windows

package ipc

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Microsoft/go-winio"

	"tab/internal/clierr"
)

// dial opens the daemon's named pipe for read+write. "Not found" means no
// daemon is listening; everything else is a connection failure.
func dial(path string, timeout time.Duration) (net.Conn, error) {
	pipe := pipeName(path)
	conn, err := winio.DialPipe(pipe, &timeout)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, clierr.Newf(clierr.DaemonNotRunning, "pipe not found at %s", pipe)
		case os.IsTimeout(err) || errors.Is(err, winio.ErrTimeout):
			return nil, clierr.Wrap(clierr.ConnectionTimeout, "connect to daemon", err)
		default:
			return nil, clierr.Wrap(clierr.ConnectionFailed, "connect to daemon", err)
		}
	}
	return conn, nil
}

// pipeName maps a configured address to \\.\pipe\ form. Unix-style socket
// paths carried over from shared configs collapse to their base name.
func pipeName(path string) string {
	if strings.HasPrefix(path, `\\.\pipe\`) {
		return path
	}
	base := strings.TrimSuffix(filepath.Base(path), ".sock")
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "tab-daemon"
	}
	return `\\.\pipe\` + base
}
