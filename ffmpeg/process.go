package ffmpeg

import (
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/pcmcast-cli/pcmcast/log"
)

// Handle owns a single spawned decode process.
//
// Liveness is defined by the completion channel: the process is alive until
// Wait() is closed, and the exit code is readable only afterwards. Terminate,
// Pause and Resume are safe to call at any point in the process lifetime.
type Handle struct {
	cmd    *exec.Cmd
	stderr io.ReadCloser

	exited   chan struct{}
	exitCode int

	terminateOnce sync.Once
}

// Start spawns the decode program with the given arguments and captures its
// diagnostic stream for progress observation.
func Start(program string, args []string) (*Handle, error) {
	cmd := exec.Command(program, args...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = nil
	cmd.Stdin = nil

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("capture diagnostic stream: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", program, err)
	}

	h := &Handle{
		cmd:    cmd,
		stderr: stderr,
		exited: make(chan struct{}),
	}

	// Reap the process to prevent zombies; the exit code must be recorded
	// before the completion channel closes.
	go func() {
		err := cmd.Wait()
		h.exitCode = cmd.ProcessState.ExitCode()
		if err != nil && h.exitCode == 0 {
			h.exitCode = -1
		}
		close(h.exited)
	}()

	log.Debugf("spawned %s (pid %d): %v", program, cmd.Process.Pid, args)
	return h, nil
}

// Wait returns a channel that is closed exactly once, when the process exits.
func (h *Handle) Wait() <-chan struct{} {
	return h.exited
}

// Alive reports whether the process has not yet exited.
func (h *Handle) Alive() bool {
	select {
	case <-h.exited:
		return false
	default:
		return true
	}
}

// ExitCode returns the recorded exit code. Valid only after Wait() is closed;
// a signal-terminated process reports -1.
func (h *Handle) ExitCode() int {
	return h.exitCode
}

// Stderr exposes the captured diagnostic stream. The stream ends when the
// process exits; the reader must treat EOF as normal completion.
func (h *Handle) Stderr() io.Reader {
	return h.stderr
}

// Pid returns the operating system process identifier.
func (h *Handle) Pid() int {
	if h.cmd.Process == nil {
		return 0
	}
	return h.cmd.Process.Pid
}

// Terminate requests process termination. Idempotent and safe to call on an
// already-exited handle.
func (h *Handle) Terminate() {
	h.terminateOnce.Do(func() {
		if !h.Alive() {
			return
		}
		if err := terminate(h.cmd); err != nil {
			log.Warnf("terminate pid %d: %v", h.Pid(), err)
		}
	})
}

// Pause suspends process execution via the platform stop signal.
func (h *Handle) Pause() error {
	if !h.Alive() {
		return fmt.Errorf("pause: process already exited")
	}
	return pause(h.cmd)
}

// Resume continues a suspended process via the platform continue signal.
func (h *Handle) Resume() error {
	if !h.Alive() {
		return fmt.Errorf("resume: process already exited")
	}
	return resume(h.cmd)
}
