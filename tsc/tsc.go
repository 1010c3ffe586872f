// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cycle-Accurate Timer
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Hardware Cycle Counter Access
//
// Description:
//   Brackets a measured region with two counter reads. On amd64 the reads are
//   serialised RDTSC/RDTSCP sequences, so out-of-order execution cannot move
//   work across the bracket. Other architectures count nanoseconds on the
//   runtime's monotonic clock, which keeps the harness portable at the cost
//   of resolution.
//
// Contract:
//   - 64-bit, monotonically non-decreasing within one pinned core
//   - Differences valid only for regions far longer than Overhead()
//   - Not comparable across frequency-scaling events; see Calibrator
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package tsc

// Clock brackets a measured region. Start is read before the region and End
// after it; implementations may use different fencing for each side.
type Clock interface {
	Start() uint64
	End() uint64
}

// Counter is the platform cycle counter as a Clock.
type Counter struct{}

// Start reads the counter before a measured region.
//
//go:nosplit
func (Counter) Start() uint64 { return start() }

// End reads the counter after a measured region.
//
//go:nosplit
func (Counter) End() uint64 { return end() }

// Now reads the counter without start/end distinction.
func Now() uint64 { return end() }

// Overhead returns the cost in counter units of one Start/End pair.
func Overhead() uint64 { return overhead() }

// Source names the counter backing this build.
func Source() string { return source }
