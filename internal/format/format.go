// Package format provides shared formatting utilities for report values.
package format

import (
	"fmt"

	"github.com/ethpandaops/k6md/internal/summary"
)

// Duration formats a millisecond value for human-readable output.
// Handles microseconds, milliseconds, seconds, and minutes.
func Duration(ms float64) string {
	if ms >= 60000 {
		return fmt.Sprintf("%.2fm", ms/60000)
	}
	if ms >= 1000 {
		return fmt.Sprintf("%.2fs", ms/1000)
	}
	if ms >= 1 {
		return fmt.Sprintf("%.2fms", ms)
	}

	return fmt.Sprintf("%.2fµs", ms*1000)
}

// Count abbreviates large counts with K/M suffixes. The fractional part of
// the input is truncated, not rounded, and negative inputs clamp to zero
// (float-to-uint conversion of a negative value is implementation-defined).
func Count(v float64) string {
	if v < 0 {
		return "0"
	}

	count := uint64(v)
	if count >= 1000000 {
		return fmt.Sprintf("%.2fM", float64(count)/1000000)
	}
	if count >= 1000 {
		return fmt.Sprintf("%.2fK", float64(count)/1000)
	}

	return fmt.Sprintf("%d", count)
}

// Rate formats a count-per-second rate.
func Rate(v float64) string {
	return fmt.Sprintf("%.2f/s", v)
}

// Percent formats a 0..1 ratio as a percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Value formats one statistic according to the metric it belongs to:
// duration-valued metrics render as durations, a Counter's rate as
// count-per-second, a Rate's rate as a percentage, and counts with K/M
// abbreviation. Everything else is a plain 2-decimal number.
func Value(v float64, key, contains string, kind summary.MetricKind) string {
	if contains == "time" {
		return Duration(v)
	}

	switch key {
	case "rate":
		switch kind {
		case summary.Counter:
			return Rate(v)
		case summary.Rate:
			return Percent(v)
		default:
			return fmt.Sprintf("%.2f", v)
		}
	case "count", "passes", "fails":
		return Count(v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
