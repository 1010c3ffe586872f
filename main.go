// ════════════════════════════════════════════════════════════════════════════════════════════════
// Memory Latency Sweep - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: memlat
// Component: Main Entry Point & Run Orchestration
//
// Description:
//   Measures average load-to-use latency across working-set sizes by chasing
//   a randomised ring of cache-line nodes. Prints one row per size so the
//   L1 → L2 → L3 → DRAM steps can be read off the curve.
//
// Architecture:
//   - Phase 0: Configuration and host probe
//   - Phase 1: Pin to one CPU, calibrate the counter, allocate the arena
//   - Phase 2: Memory cleanup, then the sweep with GC disabled
//
// Exit Status:
//   - 0 on a completed sweep or -h
//   - 1 on allocation, strict pinning or output failure
//   - 2 on invalid arguments
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"runtime"
	rtdebug "runtime/debug"

	"memlat/affinity"
	"memlat/config"
	"memlat/debug"
	"memlat/report"
	"memlat/ring"
	"memlat/sampler"
	"memlat/sweep"
	"memlat/sysinfo"
	"memlat/tsc"
	"memlat/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RUN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// run executes one full sweep and returns the process exit status.
// Table or JSON rows go to stdout; diagnostics go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	utils.Output = stderr

	// PHASE 0: Configuration and host facts
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		debug.DropError("CONFIG", err)
		return 2
	}

	host := sysinfo.Probe()
	if host.LineMismatch(ring.NodeSize) {
		debug.DropMessage("WARN", "host cache line is "+utils.Itoa(host.CacheLine)+
			" B but nodes are "+utils.Itoa(ring.NodeSize)+" B; neighbouring nodes may share a line")
	}
	capacity := cfg.MaxBytes() / ring.NodeSize
	if need := uint64(capacity+1) * uint64(ring.NodeSize); host.FreeMemory > 0 && need > host.FreeMemory {
		debug.DropMessage("WARN", "arena needs "+utils.FormatBytes(int64(need))+
			" but only "+utils.FormatBytes(int64(host.FreeMemory))+" is available; expect paging")
	}

	// PHASE 1: Pin, calibrate, allocate
	pinned := true
	if err := affinity.Bind(cfg.CPU); err != nil {
		pinned = false
		if cfg.Strict {
			debug.DropMessage("PIN", pinFailure(err))
			return 1
		}
		debug.DropMessage("WARN", pinFailure(err))
	} else {
		debug.DropMessage("PIN", "measuring thread bound to cpu "+utils.Itoa(cfg.CPU))
	}

	est := tsc.CyclesPerSecond()
	if !est.Converged {
		debug.DropMessage("WARN", "counter frequency did not settle after "+utils.Itoa(est.Rounds)+
			" rounds; ns columns are approximate")
	}
	debug.DropMessage("CALIBRATE", utils.Ftoa(est.Hz/1e6, 3)+" MHz via "+tsc.Source())

	arena, err := ring.NewArena(capacity)
	if err != nil {
		debug.DropError("ARENA", err)
		return 1
	}
	debug.DropMessage("ARENA", utils.FormatBytes(int64(arena.Bytes()))+" for "+utils.Itoa(arena.Cap())+" nodes")

	rnd := ring.NewRand()
	smp := sampler.New(rnd)
	smp.Experiments = cfg.Trials
	smp.WalkMultiplier = cfg.Walk

	var out report.Writer = report.Text{W: stdout}
	if cfg.JSON {
		out = report.JSON{W: stdout}
	}
	err = out.WriteHeader(report.Header{
		Hz:        est.Hz,
		Converged: est.Converged,
		Timer:     tsc.Source(),
		Overhead:  smp.Overhead,
		MaxBytes:  cfg.MaxBytes(),
		NodeSize:  ring.NodeSize,
		CPU:       cfg.CPU,
		Pinned:    pinned,
		Trials:    cfg.Trials,
		Walk:      cfg.Walk,
		Host:      host,
	})
	if err != nil {
		debug.DropError("OUTPUT", err)
		return 1
	}

	driver := &sweep.Driver{
		Arena:           arena,
		Sampler:         smp,
		Rand:            rnd,
		NodeSize:        ring.NodeSize,
		CyclesPerSecond: est.Hz,
	}

	// PHASE 2: Quiesce the heap, then sweep with GC off
	runtime.GC()
	runtime.GC()
	rtdebug.FreeOSMemory()
	prev := rtdebug.SetGCPercent(-1)
	defer rtdebug.SetGCPercent(prev)

	if err := driver.Run(cfg.MaxBytes(), out.WriteRow); err != nil {
		debug.DropError("OUTPUT", err)
		return 1
	}
	return 0
}

// pinFailure renders a pinning error together with the CPUs the thread is
// still allowed on, when the kernel will say.
func pinFailure(err error) string {
	cpus, aerr := affinity.Allowed()
	if aerr != nil || len(cpus) == 0 {
		return err.Error()
	}
	list := utils.Itoa(cpus[0])
	for _, c := range cpus[1:] {
		list += "," + utils.Itoa(c)
	}
	return err.Error() + "; thread may run on cpus " + list
}
