// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: report.go — Console output for the latency sweep
//
// Purpose:
//   - Writes one header block describing the run, then one line per
//     measured working-set size.
//   - Text mode: fixed 12-wide columns, 3 decimals. JSON mode: one object
//     per line, header first.
//
// Notes:
//   - Writers hold no state between rows; rows stream as the sweep yields
//     them so a long run shows progress.
// ─────────────────────────────────────────────────────────────────────────────

package report

import (
	"memlat/sweep"
	"memlat/sysinfo"
)

// Header describes the run as a whole.
type Header struct {
	Hz        float64      // calibrated counter ticks per second, 0 if absent
	Converged bool         // calibration converged within tolerance
	Timer     string       // counter source name
	Overhead  uint64       // counter read overhead in ticks
	MaxBytes  int          // working-set ceiling
	NodeSize  int          // bytes per ring node
	CPU       int          // requested logical CPU
	Pinned    bool         // pinning succeeded
	Trials    int          // experiments per size
	Walk      int          // walk multiplier
	Host      sysinfo.Host // machine facts
}

// Writer renders a run to a console stream.
type Writer interface {
	WriteHeader(h Header) error
	WriteRow(r sweep.Row) error
}
