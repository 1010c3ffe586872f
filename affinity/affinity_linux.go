//go:build linux

// affinity_linux.go
//
// sched_setaffinity(2) through x/sys/unix. pid 0 addresses the calling
// thread, which Bind has already locked to this goroutine.

package affinity

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxCPUs is the number of CPUs a unix.CPUSet can describe (CPU_SETSIZE).
const maxCPUs = int(unsafe.Sizeof(unix.CPUSet{})) * 8

func bind(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity cpu %d: %w", cpu, err)
	}

	var got unix.CPUSet
	if err := unix.SchedGetaffinity(0, &got); err != nil {
		return fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	if got.Count() != 1 || !got.IsSet(cpu) {
		return fmt.Errorf("%w: want cpu %d, have %d cpus", ErrNotPinned, cpu, got.Count())
	}
	return nil
}

// Allowed returns the CPUs the calling thread may currently run on.
func Allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	cpus := make([]int, 0, set.Count())
	for i := 0; i < maxCPUs; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}
