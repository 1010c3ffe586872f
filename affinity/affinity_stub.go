//go:build !linux

// affinity_stub.go
//
// Platforms without sched_setaffinity: Bind still locks the OS thread and
// then reports ErrUnsupported so the caller can warn or abort.

package affinity

const maxCPUs = 1 << 16

func bind(int) error { return ErrUnsupported }

// Allowed is unknown without an affinity syscall.
func Allowed() ([]int, error) { return nil, ErrUnsupported }
