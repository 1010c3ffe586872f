// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: calibrate.go — Counter frequency self-calibration
//
// Purpose:
//   - Estimates counter ticks per second so cycle samples can be shown in
//     nanoseconds. Raw cycle measurements never depend on this value.
//
// Notes:
//   - Spins on the counter across a wall-clock window, then repeats with a
//     doubled window until two successive estimates agree within Tolerance.
//   - Returns the last estimate with Converged=false when MaxRounds is hit.
//
// ⚠️ Run on the pinned thread: a migration mid-window skews the estimate.
// ─────────────────────────────────────────────────────────────────────────────

package tsc

import (
	"math"
	"time"

	"memlat/constants"
)

// Estimate is the outcome of one calibration run.
type Estimate struct {
	Hz        float64 // counter ticks per second
	Rounds    int     // windows spun
	Converged bool    // last two estimates within tolerance
}

// Calibrator estimates the counter frequency against a wall clock.
// Zero fields take the package defaults.
type Calibrator struct {
	Cycles    func() uint64    // counter read, defaults to Now
	Clock     func() time.Time // wall clock, defaults to time.Now
	Window    time.Duration    // first spin window
	Tolerance float64          // convergence bound in Hz
	MaxRounds int              // give up after this many windows
}

// CyclesPerSecond runs a default calibration and returns the frequency.
func CyclesPerSecond() Estimate {
	return (&Calibrator{}).Run()
}

// Run spins successive windows until two estimates converge.
func (c *Calibrator) Run() Estimate {
	cycles := c.Cycles
	if cycles == nil {
		cycles = Now
	}
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}
	window := c.Window
	if window <= 0 {
		window = constants.CalibrationWindow
	}
	tol := c.Tolerance
	if tol <= 0 {
		tol = constants.CalibrationToleranceHz
	}
	rounds := c.MaxRounds
	if rounds <= 0 {
		rounds = constants.CalibrationMaxRounds
	}

	var est Estimate
	prev := math.NaN()
	for est.Rounds < rounds {
		hz := spin(cycles, clock, window)
		est.Rounds++
		est.Hz = hz
		if math.Abs(hz-prev) < tol {
			est.Converged = true
			return est
		}
		prev = hz
		window *= 2
	}
	return est
}

// spin measures ticks per second over one window of wall-clock time.
func spin(cycles func() uint64, clock func() time.Time, window time.Duration) float64 {
	t0 := clock()
	c0 := cycles()
	var t1 time.Time
	for {
		t1 = clock()
		if t1.Sub(t0) >= window {
			break
		}
	}
	c1 := cycles()
	return float64(c1-c0) / t1.Sub(t0).Seconds()
}
