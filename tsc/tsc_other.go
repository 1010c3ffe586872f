//go:build !amd64

// tsc_other.go
//
// Fallback counter for architectures without a gotsc port. One unit is one
// nanosecond of the runtime monotonic clock, so calibration reports ~1 GHz
// and the nanosecond columns stay correct.

package tsc

import "time"

const source = "monotonic-ns"

var base = time.Now()

func start() uint64 { return uint64(time.Since(base)) }

func end() uint64 { return uint64(time.Since(base)) }

// overhead takes the smallest of a few back-to-back read pairs.
func overhead() uint64 {
	best := ^uint64(0)
	for i := 0; i < 1000; i++ {
		s := start()
		if d := end() - s; d < best {
			best = d
		}
	}
	return best
}
