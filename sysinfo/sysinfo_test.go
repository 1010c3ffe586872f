package sysinfo

import "testing"

func TestProbeFillsBasics(t *testing.T) {
	h := Probe()
	if h.CacheLine < 0 {
		t.Errorf("CacheLine = %d, want >= 0", h.CacheLine)
	}
	if h.CacheLine > 0 && h.CacheLine&(h.CacheLine-1) != 0 {
		t.Errorf("CacheLine = %d is not a power of two", h.CacheLine)
	}
	if h.L3 == 0 || h.L2 == 0 {
		t.Logf("cache sizes reported as zero: %+v", h)
	}
}

func TestLogicalCPUs(t *testing.T) {
	n, err := LogicalCPUs()
	if err != nil {
		t.Skipf("cpu count unavailable: %v", err)
	}
	if n < 1 {
		t.Fatalf("LogicalCPUs = %d, want >= 1", n)
	}
}

func TestFreeMemory(t *testing.T) {
	free, err := FreeMemory()
	if err != nil {
		t.Skipf("memory stats unavailable: %v", err)
	}
	if free == 0 {
		t.Fatal("FreeMemory = 0 on a running host")
	}
}

func TestLineMismatch(t *testing.T) {
	tests := []struct {
		line int
		want bool
	}{
		{0, false},
		{64, false},
		{128, true},
		{32, true},
	}
	for _, tt := range tests {
		if got := (Host{CacheLine: tt.line}).LineMismatch(64); got != tt.want {
			t.Errorf("LineMismatch(line=%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
