package utils

import (
	"io"
	"os"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// Number Formatting — Diagnostic Strings
///////////////////////////////////////////////////////////////////////////////

// Itoa formats n in base 10.
// Fills a stack buffer from the right; only the result string allocates.
//
//go:nosplit
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if n < 0 {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if n < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Ftoa formats v with prec digits after the decimal point.
func Ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

///////////////////////////////////////////////////////////////////////////////
// Size Formatting — Human-Readable Byte Counts
///////////////////////////////////////////////////////////////////////////////

// FormatBytes renders b with a binary unit: "512 B", "1.5 KiB", "128.0 MiB".
// Negative sizes render as "unknown" (probes report -1 when absent).
func FormatBytes(b int64) string {
	const unit = 1024
	if b < 0 {
		return "unknown"
	}
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return Ftoa(float64(b)/float64(div), 1) + " " + "KMGTPE"[exp:exp+1] + "iB"
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics Sink
///////////////////////////////////////////////////////////////////////////////

// Output receives every warning line. Tests swap it for a buffer.
var Output io.Writer = os.Stderr

// PrintWarning writes msg verbatim to Output.
// Write errors are dropped: there is nowhere left to report them.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	_, _ = io.WriteString(Output, msg)
}
