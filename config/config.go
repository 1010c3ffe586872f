// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: config.go — Command-line surface
//
// Purpose:
//   - Parses and validates every run parameter before any memory is touched.
//
// Notes:
//   - All failures wrap ErrUsage so the caller can map them to exit status 2.
//   - -h / -help returns flag.ErrHelp with usage already printed.
// ─────────────────────────────────────────────────────────────────────────────

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"memlat/constants"
	"memlat/sysinfo"
)

// ErrUsage marks every invalid invocation.
var ErrUsage = errors.New("usage")

// Config holds one run's parameters.
type Config struct {
	CPU    int  // logical CPU to pin to
	MaxMiB int  // working-set ceiling in MiB
	Trials int  // experiments per size
	Walk   int  // walk multiplier
	Strict bool // pinning failure is fatal
	JSON   bool // JSON lines instead of the text table
}

// MaxBytes is the working-set ceiling in bytes.
func (c Config) MaxBytes() int {
	return c.MaxMiB << 20
}

// Default returns the parameters of a run with no flags.
func Default() Config {
	return Config{
		CPU:    constants.DefaultCPU,
		MaxMiB: constants.DefaultMaxMiB,
		Trials: constants.ExperimentsCount,
		Walk:   constants.WheelWalkingCount,
	}
}

// cpuCount is swapped by tests; a non-nil error skips the range check.
var cpuCount = sysinfo.LogicalCPUs

// Parse reads args (without the program name). Usage and diagnostics go to
// stderr.
func Parse(args []string, stderr io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("memlat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.CPU, "cpu", cfg.CPU, "logical CPU to pin the measuring thread to")
	fs.IntVar(&cfg.MaxMiB, "max", cfg.MaxMiB, "maximum working set in MiB")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "experiments per working-set size")
	fs.IntVar(&cfg.Walk, "walk", cfg.Walk, "laps of the ring per experiment")
	fs.BoolVar(&cfg.Strict, "strict", false, "exit when the thread cannot be pinned")
	fs.BoolVar(&cfg.JSON, "json", false, "write JSON lines instead of a table")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: memlat [flags]\n\n"+
			"Measures memory latency by chasing a randomised ring of cache lines\n"+
			"over working sets from %d B up to -max MiB.\n\n", 2*constants.CacheLineSize)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate range-checks every field. An explicit -cpu is checked against
// the host's logical CPU count when it is known.
func (c Config) Validate() error {
	switch {
	case c.CPU < 0:
		return fmt.Errorf("%w: -cpu %d is negative", ErrUsage, c.CPU)
	case c.MaxMiB <= 0:
		return fmt.Errorf("%w: -max %d must be positive", ErrUsage, c.MaxMiB)
	case c.MaxMiB > constants.MaxMiBLimit:
		return fmt.Errorf("%w: -max %d exceeds %d MiB", ErrUsage, c.MaxMiB, constants.MaxMiBLimit)
	case c.Trials < 1:
		return fmt.Errorf("%w: -trials %d must be at least 1", ErrUsage, c.Trials)
	case c.Walk < 1:
		return fmt.Errorf("%w: -walk %d must be at least 1", ErrUsage, c.Walk)
	}
	// The default CPU may not exist on small hosts; pinning reports that
	// later as a warning instead of refusing the run.
	if c.CPU == constants.DefaultCPU {
		return nil
	}
	if n, err := cpuCount(); err == nil && n > 0 && c.CPU >= n {
		return fmt.Errorf("%w: -cpu %d but host has %d logical CPUs", ErrUsage, c.CPU, n)
	}
	return nil
}
