//go:build !windows

package config

// Well-known daemon address and executable name on Unix-like platforms.
const (
	defaultSocketPath   = "/tmp/tab-daemon.sock"
	defaultDaemonBinary = "tab-daemon"
)

func expandSocketPath(path string) (string, error) {
	return ExpandPath(path)
}
