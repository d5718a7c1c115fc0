//go:build windows

package daemonctl

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// launch starts the daemon detached from the CLI console. DETACHED_PROCESS
// is the Windows equivalent of the Unix new-session spawn; the nil stdio
// fields connect the child's streams to the null device.
func launch(path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
