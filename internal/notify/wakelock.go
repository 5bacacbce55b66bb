package notify

import (
	"errors"
	"os/exec"
	"runtime"
	"sync"
)

var errWakeUnsupported = errors.New("notify: no wake lock support on this platform")

// ExecWakeLock holds the host awake by keeping an inhibitor process alive for
// the duration of an alarm. Acquire failures are reported but expected to be
// ignored by the caller.
type ExecWakeLock struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func (w *ExecWakeLock) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cmd != nil {
		return nil
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("systemd-inhibit", "--what=idle", "--who=daytick", "--why=alarm ringing", "sleep", "infinity")
	case "darwin":
		cmd = exec.Command("caffeinate", "-di")
	default:
		return errWakeUnsupported
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	w.cmd = cmd
	return nil
}

func (w *ExecWakeLock) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cmd == nil {
		return
	}
	if w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
	}
	go func(cmd *exec.Cmd) { _ = cmd.Wait() }(w.cmd)
	w.cmd = nil
}

type NoopWakeLock struct{}

func (NoopWakeLock) Acquire() error { return nil }
func (NoopWakeLock) Release()       {}
