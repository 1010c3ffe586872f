// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: sysinfo.go — Host facts for interpreting a latency curve
//
// Purpose:
//   - Probes the real cache-line size so a mismatch with the compiled node
//     layout can be reported.
//   - Collects cache sizes, CPU model, logical CPU count and free memory for
//     the report header and for configuration checks.
//
// Notes:
//   - cpuid reads the processor directly; gopsutil reads the OS view.
//   - Every probe is best effort: unknown values stay zero or -1 and never
//     stop a run.
// ─────────────────────────────────────────────────────────────────────────────

package sysinfo

import (
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Host is a snapshot of the machine being measured.
type Host struct {
	Model       string // CPU brand string
	CacheLine   int    // probed line size in bytes, 0 when unknown
	L1D         int    // per-core L1 data cache in bytes, -1 when unknown
	L2          int    // L2 cache in bytes, -1 when unknown
	L3          int    // L3 cache in bytes, -1 when unknown
	LogicalCPUs int    // logical CPUs seen by the OS, 0 when unknown
	ReportedHz  int64  // nominal frequency from cpuid, 0 when unknown
	FreeMemory  uint64 // available memory in bytes, 0 when unknown
}

// Probe gathers a Host snapshot.
func Probe() Host {
	h := Host{
		Model:      cpuid.CPU.BrandName,
		CacheLine:  cpuid.CPU.CacheLine,
		L1D:        cpuid.CPU.Cache.L1D,
		L2:         cpuid.CPU.Cache.L2,
		L3:         cpuid.CPU.Cache.L3,
		ReportedHz: cpuid.CPU.Hz,
	}
	if h.Model == "" {
		if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
			h.Model = infos[0].ModelName
		}
	}
	if n, err := LogicalCPUs(); err == nil {
		h.LogicalCPUs = n
	}
	if free, err := FreeMemory(); err == nil {
		h.FreeMemory = free
	}
	return h
}

// LogicalCPUs returns the number of logical CPUs visible to the OS.
func LogicalCPUs() (int, error) {
	return cpu.Counts(true)
}

// FreeMemory returns the memory available for new allocations in bytes.
func FreeMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// LineMismatch reports whether the probed cache line is known and differs
// from the compiled node size.
func (h Host) LineMismatch(nodeSize int) bool {
	return h.CacheLine > 0 && h.CacheLine != nodeSize
}
