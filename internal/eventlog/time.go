package eventlog

import (
	"math"
	"strconv"
	"strings"
)

// durationBetween derives the run duration in milliseconds from the first
// and last point timestamps. Timestamps look like
// 2017-05-09T14:34:45.625742514+02:00; only the time-of-day portion is
// parsed, so runs that cross midnight produce a wrapped span. That
// limitation is deliberate: the calculation is same-day only.
func durationBetween(first, last string) (float64, bool) {
	firstMS, ok := timeOfDayMillis(first)
	if !ok {
		return 0, false
	}

	lastMS, ok := timeOfDayMillis(last)
	if !ok {
		return 0, false
	}

	return math.Abs(lastMS - firstMS), true
}

// timeOfDayMillis extracts hh:mm:ss.fff from an ISO-8601-like timestamp and
// converts it to milliseconds since midnight. Anything that does not split
// cleanly is treated as malformed.
func timeOfDayMillis(ts string) (float64, bool) {
	parts := strings.Split(ts, "T")
	if len(parts) != 2 {
		return 0, false
	}

	// Strip the timezone offset, positive or negative.
	timePart, _, _ := strings.Cut(parts[1], "+")
	timePart, _, _ = strings.Cut(timePart, "-")

	components := strings.Split(timePart, ":")
	if len(components) != 3 {
		return 0, false
	}

	hours, err := strconv.ParseFloat(components[0], 64)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.ParseFloat(components[1], 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(components[2], 64)
	if err != nil {
		return 0, false
	}

	return (hours*3600 + minutes*60 + seconds) * 1000, true
}
