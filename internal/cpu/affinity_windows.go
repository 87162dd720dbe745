//go:build windows

package cpu

import "golang.org/x/sys/windows"

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinToCore restricts the current OS thread to a single core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) (int, error) {
	prev, _, err := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), uintptr(1)<<uint(core))
	if prev == 0 {
		return 0, err
	}
	return core, nil
}
