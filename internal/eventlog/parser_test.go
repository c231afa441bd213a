package eventlog

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/k6md/internal/summary"
)

func newTestParser() *Parser {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(log)
}

func TestParse_TrendAggregation(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"trend","contains":"time","thresholds":[]},"metric":"d"}
{"type":"Point","data":{"time":"2024-01-01T10:00:00.000+00:00","value":100.0,"tags":null},"metric":"d"}
{"type":"Point","data":{"time":"2024-01-01T10:00:01.000+00:00","value":200.0,"tags":null},"metric":"d"}`

	s := newTestParser().Parse(content)

	require.Contains(t, s.Metrics, "d")
	metric := s.Metrics["d"]
	assert.Equal(t, summary.Trend, metric.Kind)
	assert.Equal(t, "time", metric.Contains)
	assert.Equal(t, 150.0, metric.Values["avg"])
	assert.Equal(t, 100.0, metric.Values["min"])
	assert.Equal(t, 200.0, metric.Values["max"])

	require.NotNil(t, s.State)
	assert.Equal(t, 1000.0, s.State.TestRunDurationMS)
	assert.Nil(t, s.RootGroup)
}

func TestParse_FirstMetricDeclarationWins(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"counter","contains":"default"},"metric":"m"}
{"type":"Metric","data":{"type":"gauge","contains":"time"},"metric":"m"}
{"type":"Point","data":{"value":1},"metric":"m"}`

	s := newTestParser().Parse(content)

	metric := s.Metrics["m"]
	assert.Equal(t, summary.Counter, metric.Kind)
	assert.Equal(t, "default", metric.Contains)
}

func TestParse_UnknownKindDefaultsToTrend(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"histogram"},"metric":"m"}
{"type":"Point","data":{"value":5},"metric":"m"}`

	s := newTestParser().Parse(content)

	assert.Equal(t, summary.Trend, s.Metrics["m"].Kind)
}

func TestParse_PointAutoRegistersTrend(t *testing.T) {
	content := `{"type":"Point","data":{"value":10},"metric":"orphan"}
{"type":"Point","data":{"value":20},"metric":"orphan"}`

	s := newTestParser().Parse(content)

	require.Contains(t, s.Metrics, "orphan")
	metric := s.Metrics["orphan"]
	assert.Equal(t, summary.Trend, metric.Kind)
	assert.Empty(t, metric.Contains)
	assert.Equal(t, 15.0, metric.Values["avg"])
}

func TestParse_SubMetricPointsSkipped(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"trend"},"metric":"d"}
{"type":"Point","data":{"value":100,"tags":null},"metric":"d"}
{"type":"Point","data":{"value":9999,"tags":{"expected_response":"true"}},"metric":"d"}
{"type":"Point","data":{"value":200,"tags":{"group":"::login"}},"metric":"d"}`

	s := newTestParser().Parse(content)

	metric := s.Metrics["d"]
	// The tagged breakdown point is excluded; the group-only tag is not a
	// sub-metric marker.
	assert.Equal(t, 100.0, metric.Values["min"])
	assert.Equal(t, 200.0, metric.Values["max"])
	assert.Equal(t, 150.0, metric.Values["avg"])
}

func TestParse_SkippedPointsStillBoundDuration(t *testing.T) {
	content := `{"type":"Point","data":{"time":"2024-01-01T10:00:00.000+00:00","value":1},"metric":"d"}
{"type":"Point","data":{"time":"2024-01-01T10:00:05.000+00:00","value":2,"tags":{"status":"200"}},"metric":"d"}`

	s := newTestParser().Parse(content)

	require.NotNil(t, s.State)
	assert.Equal(t, 5000.0, s.State.TestRunDurationMS)
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"counter"},"metric":"reqs"}
this line is not json
{"type":"Point","data":{"value":1},"metric":"reqs"}
{"broken json
{"type":"Point","data":{"value":1},"metric":"reqs"}`

	s := newTestParser().Parse(content)

	assert.Equal(t, 2.0, s.Metrics["reqs"].Values["count"])
}

func TestParse_UnknownRecordTypesIgnored(t *testing.T) {
	content := `{"type":"Options","data":{},"metric":""}
{"type":"Point","data":{"value":1},"metric":"reqs"}`

	s := newTestParser().Parse(content)

	assert.Len(t, s.Metrics, 1)
	assert.Contains(t, s.Metrics, "reqs")
}

func TestParse_PointWithoutValueIgnored(t *testing.T) {
	content := `{"type":"Point","data":{"time":"2024-01-01T10:00:00.000+00:00"},"metric":"d"}`

	s := newTestParser().Parse(content)

	assert.Empty(t, s.Metrics)
	assert.Nil(t, s.State)
}

func TestParse_ThresholdsArePassingPlaceholders(t *testing.T) {
	content := `{"type":"Metric","data":{"type":"trend","thresholds":["p(95)<500","avg<200"]},"metric":"d"}
{"type":"Point","data":{"value":100},"metric":"d"}`

	s := newTestParser().Parse(content)

	thresholds := s.Metrics["d"].Thresholds
	require.Len(t, thresholds, 2)
	assert.Equal(t, summary.Threshold{OK: true}, thresholds["p(95)<500"])
	assert.Equal(t, summary.Threshold{OK: true}, thresholds["avg<200"])
}

func TestParse_NoTimestampsMeansNoState(t *testing.T) {
	content := `{"type":"Point","data":{"value":1},"metric":"d"}`

	s := newTestParser().Parse(content)

	assert.Nil(t, s.State)
}

func TestParse_EmptyInput(t *testing.T) {
	s := newTestParser().Parse("")

	assert.Empty(t, s.Metrics)
	assert.Nil(t, s.State)
	assert.Nil(t, s.RootGroup)
}

func TestTimeOfDayMillis(t *testing.T) {
	tests := []struct {
		name     string
		ts       string
		expected float64
		ok       bool
	}{
		{
			name:     "positive offset",
			ts:       "2017-05-09T14:34:45.625742514+02:00",
			expected: (14*3600 + 34*60 + 45.625742514) * 1000,
			ok:       true,
		},
		{
			name:     "negative offset",
			ts:       "2017-05-09T14:34:45.5-05:00",
			expected: (14*3600 + 34*60 + 45.5) * 1000,
			ok:       true,
		},
		{
			name: "missing time portion",
			ts:   "2017-05-09",
		},
		{
			name: "wrong component count",
			ts:   "2017-05-09T14:34",
		},
		{
			name: "non-numeric component",
			ts:   "2017-05-09T14:xx:45+00:00",
		},
		{
			name: "empty string",
			ts:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, ok := timeOfDayMillis(tt.ts)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, ms, 1e-6)
			}
		})
	}
}

func TestDurationBetween(t *testing.T) {
	t.Run("absolute difference", func(t *testing.T) {
		ms, ok := durationBetween(
			"2024-01-01T10:00:05.000+00:00",
			"2024-01-01T10:00:00.000+00:00",
		)
		require.True(t, ok)
		assert.Equal(t, 5000.0, ms)
	})

	t.Run("malformed endpoint yields no duration", func(t *testing.T) {
		_, ok := durationBetween("2024-01-01T10:00:00.000+00:00", "nonsense")
		assert.False(t, ok)
	})

	t.Run("empty endpoints yield no duration", func(t *testing.T) {
		_, ok := durationBetween("", "")
		assert.False(t, ok)
	})
}
