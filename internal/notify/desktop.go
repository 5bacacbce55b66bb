// Package notify wraps the host capabilities the alarm scheduler invokes:
// desktop notifications, an audible alert loop, and a best-effort stay-awake
// hint. Every implementation degrades silently; a missing tool or denied
// permission only loses that channel.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type Notification struct {
	Title string
	Body  string
}

type Desktop interface {
	Send(n Notification) error
}

type NoopDesktop struct{}

func (NoopDesktop) Send(Notification) error { return nil }

// ExecDesktop shells out to the platform notification tool.
type ExecDesktop struct{}

func (ExecDesktop) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
