//go:build windows

package ffmpeg

import (
	"errors"
	"os/exec"
	"syscall"
)

// ErrSignalsUnsupported is returned for pause/resume on platforms without
// stop/continue process signals.
var ErrSignalsUnsupported = errors.New("process suspension is not supported on this platform")

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{}
}

func terminate(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}

func pause(cmd *exec.Cmd) error {
	return ErrSignalsUnsupported
}

func resume(cmd *exec.Cmd) error {
	return ErrSignalsUnsupported
}
