//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group (negative
// PID) so headless browser helpers die with their parent.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill is the fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
