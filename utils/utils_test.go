package utils

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
)

// ============================================================================
// NUMBER FORMATTING TESTS
// ============================================================================

func TestItoa(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{"Zero", 0, "0"},
		{"Single digit", 5, "5"},
		{"Two digits", 42, "42"},
		{"Negative", -17, "-17"},
		{"Large number", 987654321, "987654321"},
		{"Maximum int64", math.MaxInt64, "9223372036854775807"},
		{"Minimum int64", math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Itoa(tt.input)
			if result != tt.expected {
				t.Errorf("Itoa(%d) = %q, expected %q", tt.input, result, tt.expected)
			}
			if std := strconv.Itoa(tt.input); result != std {
				t.Errorf("Itoa(%d) = %q, strconv.Itoa = %q", tt.input, result, std)
			}
		})
	}
}

func TestItoa_EdgeCases(t *testing.T) {
	for _, n := range []int{1, 9, 10, 99, 100, 999, 1000, 9999, 10000} {
		t.Run(fmt.Sprintf("boundary_%d", n), func(t *testing.T) {
			if result, expected := Itoa(n), strconv.Itoa(n); result != expected {
				t.Errorf("Itoa(%d) = %q, expected %q", n, result, expected)
			}
		})
	}
}

func TestFtoa(t *testing.T) {
	if got := Ftoa(3.14159, 3); got != "3.142" {
		t.Errorf("Ftoa = %q, want 3.142", got)
	}
	if got := Ftoa(2, 0); got != "2" {
		t.Errorf("Ftoa = %q, want 2", got)
	}
}

// ============================================================================
// SIZE FORMATTING TESTS
// ============================================================================

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-1, "unknown"},
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{32 << 10, "32.0 KiB"},
		{128 << 20, "128.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ============================================================================
// DIAGNOSTICS SINK TESTS
// ============================================================================

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	defer func() { Output = prev }()

	testCases := []string{
		"",
		"Warning: test message\n",
		strings.Repeat("Long message ", 100),
	}
	for _, msg := range testCases {
		buf.Reset()
		PrintWarning(msg)
		if buf.String() != msg {
			t.Errorf("PrintWarning wrote %q, want %q", buf.String(), msg)
		}
	}
}
