package report

import (
	"fmt"
	"io"

	"memlat/sweep"
	"memlat/utils"
)

const colWidth = 12

// Text renders the fixed-width table.
type Text struct {
	W io.Writer
}

// WriteHeader writes the "# key: value" block and the column titles.
func (t Text) WriteHeader(h Header) error {
	freq := "unavailable"
	if h.Hz > 0 {
		freq = utils.Ftoa(h.Hz/1e6, 3) + " MHz"
		if !h.Converged {
			freq += " (not converged)"
		}
	}
	if h.Host.ReportedHz > 0 {
		freq += ", nominal " + utils.Ftoa(float64(h.Host.ReportedHz)/1e6, 3) + " MHz"
	}
	pinned := "cpu " + utils.Itoa(h.CPU)
	if !h.Pinned {
		pinned += " (NOT pinned, results may be noisy)"
	}

	_, err := fmt.Fprintf(t.W,
		"# frequency:   %s\n"+
			"# timer:       %s, overhead %d ticks\n"+
			"# working set: up to %d B (%s)\n"+
			"# node size:   %d B\n"+
			"# trials:      %d per size, %d laps each\n"+
			"# affinity:    %s\n"+
			"# host:        %s\n"+
			"# caches:      L1d %s, L2 %s, L3 %s, line %d B\n"+
			"%*s%*s%*s%*s%*s\n",
		freq,
		h.Timer, h.Overhead,
		h.MaxBytes, utils.FormatBytes(int64(h.MaxBytes)),
		h.NodeSize,
		h.Trials, h.Walk,
		pinned,
		orUnknown(h.Host.Model),
		utils.FormatBytes(int64(h.Host.L1D)), utils.FormatBytes(int64(h.Host.L2)),
		utils.FormatBytes(int64(h.Host.L3)), h.Host.CacheLine,
		colWidth, "bytes", colWidth, "mean_cyc", colWidth, "median_cyc",
		colWidth, "mean_ns", colWidth, "median_ns",
	)
	return err
}

// WriteRow writes one fixed-width line; ns columns show "-" without
// calibration.
func (t Text) WriteRow(r sweep.Row) error {
	if !r.HasNs {
		_, err := fmt.Fprintf(t.W, "%*d%*.3f%*.3f%*s%*s\n",
			colWidth, r.Bytes, colWidth, r.MeanCycles, colWidth, r.MedianCycles,
			colWidth, "-", colWidth, "-")
		return err
	}
	_, err := fmt.Fprintf(t.W, "%*d%*.3f%*.3f%*.3f%*.3f\n",
		colWidth, r.Bytes, colWidth, r.MeanCycles, colWidth, r.MedianCycles,
		colWidth, r.MeanNs, colWidth, r.MedianNs)
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
