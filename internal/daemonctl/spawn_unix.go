//go:build !windows

package daemonctl

import (
	"os/exec"
	"syscall"
)

// launch starts the daemon detached from the CLI: a new session severs the
// controlling terminal, and the nil stdio fields connect the child's
// streams to the null device. The child survives CLI exit; Release drops
// our handle so nothing waits on it.
func launch(path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
