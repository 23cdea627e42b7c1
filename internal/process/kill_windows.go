//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates a process tree with taskkill (/F force,
// /T children) so headless browser helpers die with their parent.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill is the fallback.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
