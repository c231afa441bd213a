// Package eventlog reconstructs a summary from the newline-delimited JSON
// record stream k6 emits with `--out json`.
package eventlog

import (
	"encoding/json"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ethpandaops/k6md/internal/stats"
	"github.com/ethpandaops/k6md/internal/summary"
)

// record is one line of the event log. Metric records declare a metric,
// Point records carry one sample for it; any other type is ignored.
type record struct {
	Type   string     `json:"type"`
	Metric string     `json:"metric"`
	Data   recordData `json:"data"`
}

type recordData struct {
	// Metric records.
	Type       string   `json:"type"`
	Contains   string   `json:"contains"`
	Thresholds []string `json:"thresholds"`

	// Point records.
	Time  string                     `json:"time"`
	Value *float64                   `json:"value"`
	Tags  map[string]json.RawMessage `json:"tags"`
}

// accumulator collects one metric's declaration and raw sample stream until
// the whole log has been replayed.
type accumulator struct {
	kind       summary.MetricKind
	contains   string
	samples    []float64
	thresholds []string
}

// Parser replays an event log into the canonical summary model.
type Parser struct {
	log logrus.FieldLogger
}

// New creates an event-log parser.
func New(log logrus.FieldLogger) *Parser {
	return &Parser{
		log: log.WithField("component", "eventlog"),
	}
}

// Parse never fails: malformed lines are skipped and a missing or broken
// timestamp pair simply leaves the run duration unset. Event logs are
// line-oriented and partial corruption should not abort an otherwise valid
// run.
func (p *Parser) Parse(content string) *summary.Summary {
	accumulators := make(map[string]*accumulator)

	var firstTime, lastTime string
	var skipped int

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var entry record
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			skipped++
			continue
		}

		switch entry.Type {
		case "Metric":
			// First declaration wins, later ones never overwrite.
			if _, ok := accumulators[entry.Metric]; !ok {
				accumulators[entry.Metric] = &accumulator{
					kind:       summary.KindFromString(entry.Data.Type),
					contains:   entry.Data.Contains,
					thresholds: entry.Data.Thresholds,
				}
			}
		case "Point":
			if entry.Data.Value == nil {
				continue
			}

			// Time tracking happens before the tag-skip check so skipped
			// sub-metric points still bound the run duration.
			if entry.Data.Time != "" {
				if firstTime == "" {
					firstTime = entry.Data.Time
				}
				lastTime = entry.Data.Time
			}

			if isSubMetric(entry.Data.Tags) {
				continue
			}

			acc, ok := accumulators[entry.Metric]
			if !ok {
				acc = &accumulator{kind: summary.Trend}
				accumulators[entry.Metric] = acc
			}
			acc.samples = append(acc.samples, *entry.Data.Value)
		}
	}

	if skipped > 0 {
		p.log.WithField("lines", skipped).Debug("skipped malformed event log lines")
	}

	s := &summary.Summary{
		Metrics: p.finalize(accumulators),
	}

	if ms, ok := durationBetween(firstTime, lastTime); ok {
		s.State = &summary.State{TestRunDurationMS: ms}
	}

	return s
}

// isSubMetric reports whether a point is a tagged sub-metric breakdown.
// Only the "group" tag is allowed on an aggregate point; any other tag key
// marks the point as belonging to a qualified sub-metric stream.
func isSubMetric(tags map[string]json.RawMessage) bool {
	for key := range tags {
		if key != "group" {
			return true
		}
	}

	return false
}

// finalize runs the statistics engine over every accumulator. Metrics are
// independent, so the per-metric aggregation fans out across CPUs; each
// result lands in its own slot and the output is unchanged by the
// parallelism.
func (p *Parser) finalize(accumulators map[string]*accumulator) map[string]summary.Metric {
	names := make([]string, 0, len(accumulators))
	for name := range accumulators {
		names = append(names, name)
	}

	results := make([]map[string]float64, len(names))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		i := i
		acc := accumulators[name]
		g.Go(func() error {
			results[i] = stats.Compute(acc.samples, acc.kind)
			return nil
		})
	}
	_ = g.Wait()

	metrics := make(map[string]summary.Metric, len(names))

	for i, name := range names {
		acc := accumulators[name]

		// Threshold pass/fail state is not recorded in the event log, so
		// every declared expression renders as a passing placeholder.
		thresholds := make(map[string]summary.Threshold, len(acc.thresholds))
		for _, expr := range acc.thresholds {
			thresholds[expr] = summary.Threshold{OK: true}
		}

		metrics[name] = summary.Metric{
			Kind:       acc.kind,
			Contains:   acc.contains,
			Values:     results[i],
			Thresholds: thresholds,
		}
	}

	return metrics
}
