package summary

import "fmt"

// MetricKind identifies how a metric's samples are aggregated.
type MetricKind int

// The four k6 metric kinds. Trend is the zero value so unregistered
// metrics default to it.
const (
	Trend MetricKind = iota
	Counter
	Rate
	Gauge
)

const (
	kindTrendString   = "trend"
	kindCounterString = "counter"
	kindRateString    = "rate"
	kindGaugeString   = "gauge"
)

// String returns the lowercase kind name used in k6 output.
func (k MetricKind) String() string {
	switch k {
	case Counter:
		return kindCounterString
	case Rate:
		return kindRateString
	case Gauge:
		return kindGaugeString
	default:
		return kindTrendString
	}
}

// MarshalText serializes a MetricKind as its lowercase name.
func (k MetricKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a lowercase kind name. Unknown names are an error;
// callers that want lenient parsing should use KindFromString instead.
func (k *MetricKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case kindCounterString:
		*k = Counter
	case kindRateString:
		*k = Rate
	case kindGaugeString:
		*k = Gauge
	case kindTrendString:
		*k = Trend
	default:
		return fmt.Errorf("unknown metric kind %q", string(text))
	}

	return nil
}

// KindFromString parses a kind name leniently, mapping anything
// unrecognized (including the empty string) to Trend.
func KindFromString(s string) MetricKind {
	var k MetricKind
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return Trend
	}

	return k
}
