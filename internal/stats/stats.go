// Package stats aggregates raw metric samples into the named statistics
// each metric kind reports.
package stats

import (
	"math"
	"sort"

	"github.com/ethpandaops/k6md/internal/summary"
)

// Compute aggregates samples according to the metric kind. An empty sample
// list yields an empty map for every kind.
//
// Counter samples on the event-log path are per-occurrence durations in
// milliseconds, so the reported rate is count / max(sum/1000, 1). That is a
// rough denominator rather than a true events-per-second rate, and is kept
// as-is for output compatibility with existing reports.
func Compute(samples []float64, kind summary.MetricKind) map[string]float64 {
	values := make(map[string]float64)
	if len(samples) == 0 {
		return values
	}

	// sort.Float64s orders NaN samples before all other values without
	// panicking, so a NaN sample surfaces in min (and Gauge's min) rather
	// than max.
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range samples {
		sum += v
	}
	count := float64(len(samples))

	switch kind {
	case summary.Counter:
		values["count"] = count
		values["rate"] = count / math.Max(sum/1000, 1)
	case summary.Rate:
		var passes float64
		for _, v := range samples {
			if v > 0 {
				passes++
			}
		}
		values["passes"] = passes
		values["fails"] = count - passes
		values["rate"] = passes / count
	case summary.Gauge:
		values["value"] = sorted[len(sorted)-1]
		values["min"] = sorted[0]
		values["max"] = sorted[len(sorted)-1]
	case summary.Trend:
		values["avg"] = sum / count
		values["min"] = sorted[0]
		values["max"] = sorted[len(sorted)-1]
		values["med"] = Percentile(sorted, 50)
		values["p(90)"] = Percentile(sorted, 90)
		values["p(95)"] = Percentile(sorted, 95)
		values["p(99)"] = Percentile(sorted, 99)
	}

	return values
}

// Percentile computes the p-th percentile of an ascending-sorted sequence
// by linear interpolation between the two nearest ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	fraction := index - float64(lower)

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
