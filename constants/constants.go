// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global measurement tunables
//
// Purpose:
//   - Defines the node geometry, trial counts, calibration bounds and CLI
//     defaults shared by every package of the latency sweep.
//
// Notes:
//   - CacheLineSize is baked into the node layout at compile time; the host
//     value is probed at startup and only reported, never applied.
//   - Trial counts trade runtime for stability; 20×20 keeps relative error
//     comparable across working sets from 128 B to hundreds of MiB.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

import "time"

// ───────────────────────────── Node Geometry ──────────────────────────────

const (
	// CacheLineSize is the assumed hardware cache line in bytes.
	// One ring node occupies exactly one line so every hop touches one line
	// and no two logical neighbours can share a line through struct packing.
	CacheLineSize = 64

	// MaxElements bounds the arena so uint32 links can address every slot.
	// 2^32 nodes × 64 B = 256 GiB, far above any supported ceiling.
	MaxElements = 1<<32 - 1
)

// ─────────────────────────── Sampling Harness ─────────────────────────────

const (
	// ExperimentsCount is the number of independent trials per working set.
	// Each trial starts at a fresh random node and yields one sample.
	ExperimentsCount = 20

	// WheelWalkingCount multiplies the element count to get hops per trial.
	// Every trial walks the full ring this many times, so start and timer
	// overhead amortise equally well for tiny and huge rings.
	WheelWalkingCount = 20
)

// ──────────────────────── Frequency Calibration ───────────────────────────

const (
	// CalibrationToleranceHz is the convergence bound between two successive
	// cycles-per-second estimates.
	CalibrationToleranceHz = 1000.0

	// CalibrationWindow is the first wall-clock spin window; it doubles each
	// round so late rounds average out timer granularity.
	CalibrationWindow = 10 * time.Millisecond

	// CalibrationMaxRounds caps the spin: 10ms doubling 12 times is ~80s
	// worst case, reached only on hosts whose counter never settles.
	CalibrationMaxRounds = 12
)

// ───────────────────────────── CLI Defaults ───────────────────────────────

const (
	// DefaultCPU is the logical CPU the measuring thread is pinned to.
	// CPU 0 usually services most interrupts, so 1 is the quieter default.
	DefaultCPU = 1

	// DefaultMaxMiB is the default working-set ceiling in MiB.
	// 128 MiB is well past the last-level cache of current desktop parts.
	DefaultMaxMiB = 128

	// MaxMiBLimit rejects ceilings that would not fit any realistic host.
	MaxMiBLimit = 64 << 10 // 64 GiB
)
