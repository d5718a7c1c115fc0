//go:build !windows

package ipc

import (
	"net"
	"os"
	"time"

	"tab/internal/clierr"
)

// dial opens a Unix domain socket connection to the daemon address. A
// missing socket path means no daemon, reported as such without dialing so
// the caller never sees a misleading OS-level connect error.
func dial(path string, timeout time.Duration) (net.Conn, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, clierr.Newf(clierr.DaemonNotRunning, "socket not found at %s", path)
	}

	conn, err := net.DialTimeout("unix", path, timeout)
	if err != nil {
		if isTimeout(err) {
			return nil, clierr.Wrap(clierr.ConnectionTimeout, "connect to daemon", err)
		}
		return nil, clierr.Wrap(clierr.ConnectionFailed, "connect to daemon", err)
	}
	return conn, nil
}
