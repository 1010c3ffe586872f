// ════════════════════════════════════════════════════════════════════════════════════════════════
// Latency Sampling Harness
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Timed Ring Traversal & Sample Reduction
//
// Description:
//   Runs independent timed walks over a randomised ring and reduces the
//   cycles-per-hop samples to mean and median.
//
// Trial Shape:
//   - Random start member, fresh for every trial
//   - n × WalkMultiplier hops, so every size walks its ring the same number
//     of laps and start overhead amortises equally
//   - One sample = (elapsed cycles - timer overhead) / hops, floored at 0
//
// Reduction:
//   - Mean over all samples
//   - Median is the lower-middle element, index (count-1)/2 after sorting,
//     never the average of the two middle samples
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package sampler

import (
	"math/rand/v2"
	"slices"

	"memlat/constants"
	"memlat/ring"
	"memlat/tsc"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE DATA STRUCTURES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Result summarises the samples taken for one working-set size.
// The zero value is the degenerate result for rings below two members.
type Result struct {
	Mean    float64 // mean cycles per hop
	Median  float64 // lower-middle cycles per hop
	Min     float64 // fastest trial
	Max     float64 // slowest trial
	Samples int     // trials taken
	Hops    uint64  // hops per trial
}

// Sampler times pointer-chase trials over an arena prefix.
// It is not safe for concurrent use; the sweep owns exactly one.
type Sampler struct {
	Experiments    int        // trials per size
	WalkMultiplier int        // laps per trial
	Clock          tsc.Clock  // region bracket
	Overhead       uint64     // cost of one Start/End pair, subtracted per trial
	Rand           *rand.Rand // start-member source

	samples []float64 // reused across sizes
}

// New returns a Sampler with the default trial shape on the cycle counter.
// The counter overhead is measured once here.
func New(r *rand.Rand) *Sampler {
	return &Sampler{
		Experiments:    constants.ExperimentsCount,
		WalkMultiplier: constants.WheelWalkingCount,
		Clock:          tsc.Counter{},
		Overhead:       tsc.Overhead(),
		Rand:           r,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MEASUREMENT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Sample runs Experiments timed walks over the n-member ring in a and
// returns their reduction. n < 2 returns the zero Result without touching
// the arena. The ring must already be built and shuffled.
//
//go:norace
//go:nocheckptr
func (s *Sampler) Sample(a *ring.Arena, n int) Result {
	if n < 2 || s.Experiments < 1 || s.WalkMultiplier < 1 {
		return Result{}
	}

	if cap(s.samples) < s.Experiments {
		s.samples = make([]float64, s.Experiments)
	}
	samples := s.samples[:s.Experiments]

	hops := uint64(n) * uint64(s.WalkMultiplier)
	for i := range samples {
		start := uint32(s.Rand.IntN(n))

		t0 := s.Clock.Start()
		a.Walk(start, hops)
		t1 := s.Clock.End()

		var elapsed uint64
		if d := t1 - t0; d > s.Overhead && t1 >= t0 {
			elapsed = d - s.Overhead
		}
		samples[i] = float64(elapsed) / float64(hops)
	}

	mean, median := Reduce(samples)
	return Result{
		Mean:    mean,
		Median:  median,
		Min:     samples[0],
		Max:     samples[len(samples)-1],
		Samples: len(samples),
		Hops:    hops,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// REDUCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Reduce sorts samples ascending in place and returns their mean and their
// lower-middle element. An empty slice reduces to zeros.
func Reduce(samples []float64) (mean, median float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	slices.Sort(samples)

	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples)), samples[(len(samples)-1)/2]
}
