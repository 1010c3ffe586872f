// ════════════════════════════════════════════════════════════════════════════════════════════════
// Measuring-Thread Affinity
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Single-CPU Pinning
//
// Description:
//   Locks the calling goroutine to its OS thread and restricts that thread to
//   one logical CPU. A migration mid-trial would both invalidate the counter
//   pair (cores may not share a counter origin) and cool the caches being
//   measured.
//
// Failure Policy:
//   - Errors are returned, never swallowed; the caller decides whether a
//     run without pinning is still worth reporting.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package affinity

import (
	"errors"
	"runtime"
)

var (
	// ErrInvalidCPU is returned for CPU ids outside the kernel mask range.
	ErrInvalidCPU = errors.New("affinity: cpu id out of range")

	// ErrUnsupported is returned on platforms without thread affinity.
	ErrUnsupported = errors.New("affinity: thread pinning not supported on this platform")

	// ErrNotPinned is returned when the kernel accepted the mask but the
	// thread's effective affinity is not exactly the requested CPU.
	ErrNotPinned = errors.New("affinity: effective mask differs from request")
)

// Bind locks the calling goroutine to its OS thread and pins that thread to
// logical CPU cpu. The goroutine stays locked even when pinning fails, so a
// degraded run at least stays on one thread.
func Bind(cpu int) error {
	runtime.LockOSThread()
	if cpu < 0 || cpu >= maxCPUs {
		return ErrInvalidCPU
	}
	return bind(cpu)
}
