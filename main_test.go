package main

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"

	"memlat/affinity"
	"memlat/utils"
)

// runCaptured runs one invocation and restores the diagnostics sink
func runCaptured(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	prev := utils.Output
	t.Cleanup(func() { utils.Output = prev })

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"unknown_flag", []string{"-nope"}},
		{"zero_max", []string{"-max", "0"}},
		{"positional", []string{"now"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCaptured(t, tc.args...)
			if code != 2 {
				t.Fatalf("exit = %d, want 2", code)
			}
			if stdout != "" {
				t.Fatalf("measurement output before validation: %q", stdout)
			}
			if !strings.Contains(stderr, "CONFIG: usage") {
				t.Fatalf("stderr = %q", stderr)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, stdout, stderr := runCaptured(t, "-h")
	if code != 0 || stdout != "" {
		t.Fatalf("exit = %d, stdout = %q", code, stdout)
	}
	if !strings.Contains(stderr, "usage: memlat") {
		t.Fatalf("stderr = %q", stderr)
	}
}

// TestRunSmallSweep runs the whole program on a 1 MiB ceiling
func TestRunSmallSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("calibrates the counter and sweeps 1 MiB")
	}
	code, stdout, stderr := runCaptured(t, "-cpu", "0", "-max", "1", "-trials", "2", "-walk", "1", "-json")
	if code != 0 {
		t.Fatalf("exit = %d, stderr:\n%s", code, stderr)
	}

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	// 128 B .. 1 MiB: two sizes per doubling from 2^7 to 2^19, plus 2^20
	if want := 1 + 27; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, stdout)
	}
	var rec struct {
		Type  string `json:"type"`
		Bytes int    `json:"bytes"`
	}
	if err := sonnet.Unmarshal([]byte(lines[0]), &rec); err != nil || rec.Type != "header" {
		t.Fatalf("first line %q: %v", lines[0], err)
	}
	if err := sonnet.Unmarshal([]byte(lines[len(lines)-1]), &rec); err != nil || rec.Bytes != 1<<20 {
		t.Fatalf("last line %q: %v", lines[len(lines)-1], err)
	}
	if !strings.Contains(stderr, "ARENA:") || !strings.Contains(stderr, "CALIBRATE:") {
		t.Fatalf("missing progress lines:\n%s", stderr)
	}
}

func TestPinFailureListsAllowedCPUs(t *testing.T) {
	msg := pinFailure(errors.New("affinity: sched_setaffinity cpu 9: invalid argument"))
	if !strings.HasPrefix(msg, "affinity: sched_setaffinity cpu 9") {
		t.Fatalf("message lost the error: %q", msg)
	}
	cpus, err := affinity.Allowed()
	if err != nil {
		if msg != "affinity: sched_setaffinity cpu 9: invalid argument" {
			t.Fatalf("%s: unexpected suffix in %q", runtime.GOOS, msg)
		}
		return
	}
	if !strings.Contains(msg, "; thread may run on cpus "+utils.Itoa(cpus[0])) {
		t.Fatalf("allowed CPUs %v missing from %q", cpus, msg)
	}
}
