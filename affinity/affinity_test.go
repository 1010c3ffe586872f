package affinity

import (
	"errors"
	"runtime"
	"testing"
)

// onLockedThread runs fn on a fresh goroutine so pinning never leaks into
// the test runner's own thread; the locked thread exits with the goroutine.
func onLockedThread(fn func() error) error {
	done := make(chan error, 1)
	go func() {
		err := fn()
		done <- err
	}()
	return <-done
}

func TestBindRejectsNegativeCPU(t *testing.T) {
	err := onLockedThread(func() error { return Bind(-1) })
	if !errors.Is(err, ErrInvalidCPU) {
		t.Fatalf("Bind(-1) = %v, want ErrInvalidCPU", err)
	}
}

func TestBindRejectsHugeCPU(t *testing.T) {
	err := onLockedThread(func() error { return Bind(maxCPUs) })
	if !errors.Is(err, ErrInvalidCPU) {
		t.Fatalf("Bind(%d) = %v, want ErrInvalidCPU", maxCPUs, err)
	}
}

func TestBindToAllowedCPU(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("thread affinity is linux only")
	}
	cpus, err := Allowed()
	if err != nil || len(cpus) == 0 {
		t.Skipf("no allowed cpus: %v", err)
	}
	target := cpus[len(cpus)-1]

	err = onLockedThread(func() error {
		if err := Bind(target); err != nil {
			return err
		}
		now, err := Allowed()
		if err != nil {
			return err
		}
		if len(now) != 1 || now[0] != target {
			t.Errorf("Allowed after Bind(%d) = %v", target, now)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Bind(%d): %v", target, err)
	}
}

func TestBindUnsupportedOrDisallowed(t *testing.T) {
	if runtime.GOOS != "linux" {
		err := onLockedThread(func() error { return Bind(0) })
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("Bind(0) = %v, want ErrUnsupported", err)
		}
		return
	}
	cpus, err := Allowed()
	if err != nil {
		t.Skip(err)
	}
	allowed := make(map[int]bool, len(cpus))
	for _, c := range cpus {
		allowed[c] = true
	}
	outside := -1
	for c := maxCPUs - 1; c >= 0; c-- {
		if !allowed[c] {
			outside = c
			break
		}
	}
	if outside < 0 {
		t.Skip("every cpu id is allowed")
	}
	if err := onLockedThread(func() error { return Bind(outside) }); err == nil {
		t.Fatalf("Bind(%d) outside the allowed set succeeded", outside)
	}
}
