package tsc

import (
	"math"
	"testing"
	"time"
)

// fakeTime is a wall clock that advances by step on every read and a
// counter that ticks at rate ticks per nanosecond of that clock.
type fakeTime struct {
	now   time.Time
	step  time.Duration
	rate  func(read int) float64
	reads int
}

func (f *fakeTime) clock() time.Time {
	f.now = f.now.Add(f.step)
	return f.now
}

func (f *fakeTime) cycles() uint64 {
	f.reads++
	return uint64(float64(f.now.UnixNano()) * f.rate(f.reads))
}

// TestCounterMonotonic checks that successive reads never go backwards
func TestCounterMonotonic(t *testing.T) {
	var c Counter
	prev := c.Start()
	for i := 0; i < 10000; i++ {
		now := c.End()
		if now < prev {
			t.Fatalf("read %d went backwards: %d < %d", i, now, prev)
		}
		prev = now
	}
}

// TestCounterAdvancesOverSleep checks that the counter moves across a
// wall-clock interval far larger than its read overhead
func TestCounterAdvancesOverSleep(t *testing.T) {
	var c Counter
	s := c.Start()
	time.Sleep(5 * time.Millisecond)
	e := c.End()
	if e-s <= Overhead() {
		t.Fatalf("counter advanced %d over 5ms, overhead %d", e-s, Overhead())
	}
}

func TestSourceNamed(t *testing.T) {
	if Source() == "" {
		t.Fatal("Source() is empty")
	}
}

// TestCalibratorConvergesOnSteadyRate feeds a perfectly steady 3 GHz counter
func TestCalibratorConvergesOnSteadyRate(t *testing.T) {
	f := &fakeTime{
		now:  time.Unix(1000, 0),
		step: time.Millisecond,
		rate: func(int) float64 { return 3 },
	}
	c := &Calibrator{Cycles: f.cycles, Clock: f.clock, Window: 10 * time.Millisecond}
	est := c.Run()

	if !est.Converged {
		t.Fatalf("did not converge after %d rounds", est.Rounds)
	}
	if est.Rounds != 2 {
		t.Fatalf("rounds = %d, want 2", est.Rounds)
	}
	if math.Abs(est.Hz-3e9) > 1000 {
		t.Fatalf("Hz = %f, want 3e9", est.Hz)
	}
}

// TestCalibratorGivesUpOnUnstableRate alternates between two rates so
// successive estimates never agree
func TestCalibratorGivesUpOnUnstableRate(t *testing.T) {
	f := &fakeTime{
		now:  time.Unix(1000, 0),
		step: time.Millisecond,
	}
	// both reads of one round share a rate; rounds alternate 2 GHz / 4 GHz
	f.rate = func(read int) float64 {
		if ((read-1)/2)%2 == 0 {
			return 2
		}
		return 4
	}
	c := &Calibrator{Cycles: f.cycles, Clock: f.clock, Window: time.Millisecond, MaxRounds: 5}
	est := c.Run()

	if est.Converged {
		t.Fatalf("converged on unstable rate: %+v", est)
	}
	if est.Rounds != 5 {
		t.Fatalf("rounds = %d, want 5", est.Rounds)
	}
}

// TestCyclesPerSecondReal runs one real calibration with short windows
func TestCyclesPerSecondReal(t *testing.T) {
	if testing.Short() {
		t.Skip("spins for up to a second")
	}
	c := &Calibrator{Window: time.Millisecond, MaxRounds: 8, Tolerance: 1e9}
	est := c.Run()
	if est.Hz <= 0 {
		t.Fatalf("Hz = %f, want > 0", est.Hz)
	}
}
