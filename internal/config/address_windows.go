//go:build windows

package config

import "strings"

// Well-known daemon address and executable name on Windows.
const (
	defaultSocketPath   = `\\.\pipe\tab-daemon`
	defaultDaemonBinary = "tab-daemon.exe"
)

// Named-pipe addresses are not filesystem paths; leave them untouched.
func expandSocketPath(path string) (string, error) {
	if strings.HasPrefix(path, `\\.\pipe\`) {
		return path, nil
	}
	return ExpandPath(path)
}
