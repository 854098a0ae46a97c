//go:build !windows

package ffmpeg

import (
	"os/exec"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}

func terminate(cmd *exec.Cmd) error {
	err := cmd.Process.Signal(syscall.SIGTERM)
	if err != nil {
		return err
	}

	// A stopped process keeps SIGTERM pending until it runs again, so a
	// suspended decoder must be continued for the termination to land.
	return cmd.Process.Signal(syscall.SIGCONT)
}

func pause(cmd *exec.Cmd) error {
	return cmd.Process.Signal(syscall.SIGSTOP)
}

func resume(cmd *exec.Cmd) error {
	return cmd.Process.Signal(syscall.SIGCONT)
}
