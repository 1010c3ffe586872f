package report

import (
	"io"

	"github.com/sugawarayuuta/sonnet"

	"memlat/sweep"
)

// JSON renders one object per line: a header record, then row records.
type JSON struct {
	W io.Writer
}

type jsonHeader struct {
	Type        string  `json:"type"`
	Hz          float64 `json:"hz"`
	Converged   bool    `json:"converged"`
	Timer       string  `json:"timer"`
	Overhead    uint64  `json:"timer_overhead"`
	MaxBytes    int     `json:"max_bytes"`
	NodeSize    int     `json:"node_size"`
	CPU         int     `json:"cpu"`
	Pinned      bool    `json:"pinned"`
	Trials      int     `json:"trials"`
	Walk        int     `json:"walk"`
	ReportedHz  int64   `json:"reported_hz,omitempty"`
	Model       string  `json:"model,omitempty"`
	CacheLine   int     `json:"cache_line"`
	L1D         int     `json:"l1d"`
	L2          int     `json:"l2"`
	L3          int     `json:"l3"`
	LogicalCPUs int     `json:"logical_cpus"`
}

type jsonRow struct {
	Type         string   `json:"type"`
	Bytes        int      `json:"bytes"`
	Elements     int      `json:"elements"`
	MeanCycles   float64  `json:"mean_cycles"`
	MedianCycles float64  `json:"median_cycles"`
	MinCycles    float64  `json:"min_cycles"`
	MaxCycles    float64  `json:"max_cycles"`
	MeanNs       *float64 `json:"mean_ns,omitempty"`
	MedianNs     *float64 `json:"median_ns,omitempty"`
}

// WriteHeader writes the header record.
func (j JSON) WriteHeader(h Header) error {
	return j.line(jsonHeader{
		Type:        "header",
		Hz:          h.Hz,
		Converged:   h.Converged,
		Timer:       h.Timer,
		Overhead:    h.Overhead,
		MaxBytes:    h.MaxBytes,
		NodeSize:    h.NodeSize,
		CPU:         h.CPU,
		Pinned:      h.Pinned,
		Trials:      h.Trials,
		Walk:        h.Walk,
		ReportedHz:  h.Host.ReportedHz,
		Model:       h.Host.Model,
		CacheLine:   h.Host.CacheLine,
		L1D:         h.Host.L1D,
		L2:          h.Host.L2,
		L3:          h.Host.L3,
		LogicalCPUs: h.Host.LogicalCPUs,
	})
}

// WriteRow writes one row record; ns fields are omitted without
// calibration.
func (j JSON) WriteRow(r sweep.Row) error {
	row := jsonRow{
		Type:         "row",
		Bytes:        r.Bytes,
		Elements:     r.Elements,
		MeanCycles:   r.MeanCycles,
		MedianCycles: r.MedianCycles,
		MinCycles:    r.MinCycles,
		MaxCycles:    r.MaxCycles,
	}
	if r.HasNs {
		mean, median := r.MeanNs, r.MedianNs
		row.MeanNs, row.MedianNs = &mean, &median
	}
	return j.line(row)
}

func (j JSON) line(v any) error {
	b, err := sonnet.Marshal(v)
	if err != nil {
		return err
	}
	_, err = j.W.Write(append(b, '\n'))
	return err
}
