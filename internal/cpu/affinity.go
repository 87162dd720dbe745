// Package cpu pins worker goroutines to CPU cores.
package cpu

import (
	"errors"
	"runtime"
)

// ErrUnsupported is returned by pinToCore on platforms without thread
// affinity control.
var ErrUnsupported = errors.New("cpu affinity not supported on this platform")

// Pin locks the calling goroutine to its OS thread and pins that thread to
// core workerID mod NumCPU. Pinning failures are ignored; the thread lock
// still holds. The returned func releases the lock and must be deferred.
func Pin(workerID int) (release func()) {
	runtime.LockOSThread()
	_, _ = pinToCore(coreFor(workerID))

	return runtime.UnlockOSThread
}

func coreFor(workerID int) int {
	n := runtime.NumCPU()
	if workerID < 0 {
		workerID = -workerID
	}
	return workerID % n
}
