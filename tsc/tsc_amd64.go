//go:build amd64

// tsc_amd64.go
//
// Time-stamp counter reads via gotsc. BenchStart issues CPUID before RDTSC so
// earlier instructions retire first; BenchEnd issues RDTSCP then CPUID so the
// region finishes before the read and later work cannot start early.

package tsc

import "github.com/dterei/gotsc"

const source = "rdtsc"

//go:nosplit
func start() uint64 { return gotsc.BenchStart() }

//go:nosplit
func end() uint64 { return gotsc.BenchEnd() }

func overhead() uint64 { return gotsc.TSCOverhead() }
