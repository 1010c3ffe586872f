// ════════════════════════════════════════════════════════════════════════════════════════════════
// Working-Set Sweep Driver
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Geometric Size Schedule & Per-Size Pipeline
//
// Description:
//   Walks working-set sizes from two nodes up to the configured ceiling and,
//   for each, rebuilds, reshuffles and samples a ring over the prefix of one
//   shared arena. Emits one Row per measured size.
//
// Schedule:
//   - Start at 2 × node size
//   - Each step yields cur and cur × 3/2, then doubles cur
//   - Stops at the first candidate above the ceiling
//
// Resource Model:
//   - The arena is allocated once by the caller; Run never allocates it again
//   - Single goroutine, no internal cancellation
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package sweep

import (
	"math/rand/v2"

	"memlat/ring"
	"memlat/sampler"
)

// Row is the measurement for one working-set size.
type Row struct {
	Bytes        int     // elements × node size
	Elements     int     // ring members
	MeanCycles   float64 // mean cycles per hop
	MedianCycles float64 // median cycles per hop
	MinCycles    float64 // fastest trial
	MaxCycles    float64 // slowest trial
	MeanNs       float64 // mean ns per hop, valid when HasNs
	MedianNs     float64 // median ns per hop, valid when HasNs
	HasNs        bool    // calibration was available
}

// Sampler measures a built, shuffled ring. *sampler.Sampler satisfies it.
type Sampler interface {
	Sample(a *ring.Arena, n int) sampler.Result
}

// Driver runs the Build → Shuffle → Sample pipeline across the schedule.
type Driver struct {
	Arena           *ring.Arena
	Sampler         Sampler
	Rand            *rand.Rand // shuffle source
	NodeSize        int        // bytes per ring node
	CyclesPerSecond float64    // zero disables the ns columns
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SIZE SCHEDULE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Sizes returns the working-set sizes in bytes visited for a ceiling of
// maxBytes: 2n, 3n, 4n, 6n, 8n, 12n ... for node size n, none above
// maxBytes. Non-positive inputs yield no sizes.
func Sizes(maxBytes, nodeSize int) []int {
	if maxBytes <= 0 || nodeSize <= 0 {
		return nil
	}
	var out []int
	for cur := 2 * nodeSize; cur <= maxBytes; cur <<= 1 {
		out = append(out, cur)
		mid := cur * 3 / 2
		if mid > maxBytes {
			break
		}
		out = append(out, mid)
	}
	return out
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PIPELINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Run measures every size of the schedule for maxBytes and hands each row to
// emit in ascending order. Sizes whose ring would not fit the arena are
// clamped out. The first emit error stops the sweep and is returned.
func (d *Driver) Run(maxBytes int, emit func(Row) error) error {
	for _, size := range Sizes(maxBytes, d.NodeSize) {
		n := size / d.NodeSize
		if n < 1 || n > d.Arena.Cap() {
			continue
		}
		if err := emit(d.Measure(n)); err != nil {
			return err
		}
	}
	return nil
}

// Measure builds, shuffles and samples an n-member ring and returns its row.
func (d *Driver) Measure(n int) Row {
	d.Arena.Build(n)
	d.Arena.Shuffle(n, d.Rand)
	res := d.Sampler.Sample(d.Arena, n)

	row := Row{
		Bytes:        n * d.NodeSize,
		Elements:     n,
		MeanCycles:   res.Mean,
		MedianCycles: res.Median,
		MinCycles:    res.Min,
		MaxCycles:    res.Max,
	}
	if d.CyclesPerSecond > 0 {
		perNs := d.CyclesPerSecond / 1e9
		row.MeanNs = res.Mean / perNs
		row.MedianNs = res.Median / perNs
		row.HasNs = true
	}
	return row
}
