package util

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	a := NewID("cheese-")
	b := NewID("cheese-")

	if !strings.HasPrefix(a, "cheese-") {
		t.Fatalf("NewID() = %s, want cheese- prefix", a)
	}
	if a == b {
		t.Fatalf("NewID() returned %s twice", a)
	}
}

func TestMonotonicClock(t *testing.T) {
	t.Parallel()

	fixed := time.UnixMilli(1_000)
	clock := &MonotonicClock{now: func() time.Time { return fixed }}

	got := []int64{clock.NowMillis(), clock.NowMillis(), clock.NowMillis()}
	want := []int64{1_000, 1_001, 1_002}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NowMillis() call %d = %d, want %d", i, got[i], want[i])
		}
	}

	fixed = time.UnixMilli(500)
	if ts := clock.NowMillis(); ts != 1_003 {
		t.Fatalf("NowMillis() after clock step back = %d, want 1003", ts)
	}

	fixed = time.UnixMilli(5_000)
	if ts := clock.NowMillis(); ts != 5_000 {
		t.Fatalf("NowMillis() after clock jump = %d, want 5000", ts)
	}
}

func TestUniqueTrimmed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expected []string
	}{
		{name: "nil input", values: nil, expected: []string{}},
		{name: "trims and drops blanks", values: []string{" Nutty ", "", "  "}, expected: []string{"Nutty"}},
		{name: "keeps first occurrence", values: []string{"Salty", "Nutty", " Salty"}, expected: []string{"Salty", "Nutty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := UniqueTrimmed(tt.values); !slices.Equal(got, tt.expected) || got == nil {
				t.Fatalf("UniqueTrimmed(%q) = %q, want %q", tt.values, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
