// Package report walks the canonical summary model and emits the Markdown
// report with a fixed section order and deterministic sorting, so the same
// input always produces byte-identical output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/k6md/internal/format"
	"github.com/ethpandaops/k6md/internal/markdown"
	"github.com/ethpandaops/k6md/internal/summary"
)

// statPriority fixes the display order of the common per-metric statistics;
// any remaining keys follow alphabetically.
var statPriority = []string{"avg", "min", "med", "max", "p(90)", "p(95)", "p(99)"}

// Generator produces the Markdown report for one summary.
type Generator struct {
	log logrus.FieldLogger
	md  markdown.Renderer
}

// New creates a report generator.
func New(log logrus.FieldLogger, md markdown.Renderer) *Generator {
	return &Generator{
		log: log.WithField("component", "report"),
		md:  md,
	}
}

// Generate renders the full report: title, optional duration, summary,
// thresholds, HTTP metrics, checks, and the remaining metrics by kind.
func (g *Generator) Generate(s *summary.Summary) string {
	g.log.WithField("metrics", len(s.Metrics)).Debug("generating report")

	var b strings.Builder

	b.WriteString("# K6 Load Test Report\n\n")

	if s.State != nil {
		fmt.Fprintf(&b, "**Test Duration:** %s\n\n", format.Duration(s.State.TestRunDurationMS))
	}

	b.WriteString("---\n\n")

	g.writeSummary(&b, s)
	g.writeThresholds(&b, s)
	g.writeHTTPMetrics(&b, s)
	g.writeChecks(&b, s)
	g.writeAllMetrics(&b, s)

	return b.String()
}

// writeSummary renders the fixed headline rows. A row whose source metric
// or statistic is absent is silently omitted.
func (g *Generator) writeSummary(b *strings.Builder, s *summary.Summary) {
	b.WriteString("## Summary\n\n")

	var rows [][]string

	if metric, ok := s.Metrics["http_reqs"]; ok {
		if count, ok := metric.Values["count"]; ok {
			rows = append(rows, []string{"Total Requests", format.Count(count)})
		}
		if rate, ok := metric.Values["rate"]; ok {
			rows = append(rows, []string{"Request Rate", format.Rate(rate)})
		}
	}

	if metric, ok := s.Metrics["http_req_failed"]; ok {
		if fails, ok := metric.Values["fails"]; ok {
			rate := metric.Values["rate"]
			rows = append(rows, []string{
				"Failed Requests",
				fmt.Sprintf("%s (%s)", format.Count(fails), format.Percent(rate)),
			})
		}
	}

	if metric, ok := s.Metrics["http_req_duration"]; ok {
		if avg, ok := metric.Values["avg"]; ok {
			rows = append(rows, []string{"Avg Response Time", format.Duration(avg)})
		}
		if p95, ok := metric.Values["p(95)"]; ok {
			rows = append(rows, []string{"P95 Response Time", format.Duration(p95)})
		}
	}

	if metric, ok := s.Metrics["iterations"]; ok {
		if count, ok := metric.Values["count"]; ok {
			rows = append(rows, []string{"Iterations", format.Count(count)})
		}
	}

	if metric, ok := s.Metrics["vus"]; ok {
		if value, ok := metric.Values["value"]; ok {
			rows = append(rows, []string{"Virtual Users", fmt.Sprintf("%d", uint64(value))})
		}
	}

	g.md.WriteTable(b, []string{"Metric", "Value"}, rows)
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeThresholds(b *strings.Builder, s *summary.Summary) {
	type entry struct {
		metric string
		expr   string
		ok     bool
	}

	var entries []entry
	for name, metric := range s.Metrics {
		for expr, result := range metric.Thresholds {
			entries = append(entries, entry{metric: name, expr: expr, ok: result.OK})
		}
	}

	if len(entries) == 0 {
		return
	}

	// Failing thresholds first, then by metric name, then by expression.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ok != entries[j].ok {
			return !entries[i].ok
		}
		if entries[i].metric != entries[j].metric {
			return entries[i].metric < entries[j].metric
		}
		return entries[i].expr < entries[j].expr
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "✓ PASS"
		if !e.ok {
			status = "✗ **FAIL**"
		}
		rows = append(rows, []string{e.metric, fmt.Sprintf("`%s`", e.expr), status})
	}

	b.WriteString("## Thresholds\n\n")
	g.md.WriteTable(b, []string{"Metric", "Threshold", "Status"}, rows)
	b.WriteString("\n---\n\n")
}

func (g *Generator) writeHTTPMetrics(b *strings.Builder, s *summary.Summary) {
	names := make([]string, 0, len(s.Metrics))
	for name := range s.Metrics {
		if strings.HasPrefix(name, "http_") && !strings.Contains(name, "{") {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return
	}
	sort.Strings(names)

	b.WriteString("## HTTP Metrics\n\n")

	for _, name := range names {
		metric := s.Metrics[name]
		fmt.Fprintf(b, "### %s (%s)\n\n", name, metric.Kind)
		g.writeStatTable(b, metric)
	}

	b.WriteString("---\n\n")
}

// writeStatTable renders one metric's statistics in priority order.
func (g *Generator) writeStatTable(b *strings.Builder, metric summary.Metric) {
	keys := sortedStatKeys(metric.Values)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{
			key,
			format.Value(metric.Values[key], key, metric.Contains, metric.Kind),
		})
	}

	g.md.WriteTable(b, []string{"Stat", "Value"}, rows)
	b.WriteString("\n")
}

func (g *Generator) writeChecks(b *strings.Builder, s *summary.Summary) {
	checks := s.RootGroup.AllChecks()
	if len(checks) == 0 {
		return
	}

	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		total := check.Passes + check.Fails
		rate := 100.0
		if total > 0 {
			rate = float64(check.Passes) / float64(total) * 100
		}

		icon := "✓"
		if check.Fails > 0 {
			icon = "✗"
		}

		rows = append(rows, []string{
			fmt.Sprintf("%s %s", icon, check.Name),
			fmt.Sprintf("%d", check.Passes),
			fmt.Sprintf("%d", check.Fails),
			fmt.Sprintf("%.2f%%", rate),
		})
	}

	b.WriteString("## Checks\n\n")
	g.md.WriteTable(b, []string{"Check", "Passes", "Fails", "Success Rate"}, rows)
	b.WriteString("\n---\n\n")
}

// writeAllMetrics renders the remaining metrics grouped by kind. Sub-metric
// names (containing '{') and the http_ metrics already shown are excluded.
func (g *Generator) writeAllMetrics(b *strings.Builder, s *summary.Summary) {
	b.WriteString("## All Metrics\n\n")

	buckets := make(map[summary.MetricKind][]string)
	for name, metric := range s.Metrics {
		if strings.Contains(name, "{") || strings.HasPrefix(name, "http_") {
			continue
		}
		buckets[metric.Kind] = append(buckets[metric.Kind], name)
	}
	for _, names := range buckets {
		sort.Strings(names)
	}

	if names := buckets[summary.Counter]; len(names) > 0 {
		b.WriteString("### Counters\n\n")

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			metric := s.Metrics[name]
			rows = append(rows, []string{
				name,
				format.Count(metric.Values["count"]),
				format.Rate(metric.Values["rate"]),
			})
		}

		g.md.WriteTable(b, []string{"Metric", "Count", "Rate"}, rows)
		b.WriteString("\n")
	}

	if names := buckets[summary.Rate]; len(names) > 0 {
		b.WriteString("### Rates\n\n")

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			metric := s.Metrics[name]
			rows = append(rows, []string{
				name,
				format.Percent(metric.Values["rate"]),
				format.Count(metric.Values["passes"]),
				format.Count(metric.Values["fails"]),
			})
		}

		g.md.WriteTable(b, []string{"Metric", "Rate", "Passes", "Fails"}, rows)
		b.WriteString("\n")
	}

	if names := buckets[summary.Gauge]; len(names) > 0 {
		b.WriteString("### Gauges\n\n")

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			metric := s.Metrics[name]
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%.2f", metric.Values["value"]),
				fmt.Sprintf("%.2f", metric.Values["min"]),
				fmt.Sprintf("%.2f", metric.Values["max"]),
			})
		}

		g.md.WriteTable(b, []string{"Metric", "Value", "Min", "Max"}, rows)
		b.WriteString("\n")
	}

	if names := buckets[summary.Trend]; len(names) > 0 {
		b.WriteString("### Trends\n\n")

		for _, name := range names {
			fmt.Fprintf(b, "**%s**\n\n", name)
			g.writeStatTable(b, s.Metrics[name])
		}
	}
}

// sortedStatKeys orders statistic names by the fixed priority list, then
// any remaining keys alphabetically.
func sortedStatKeys(values map[string]float64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	priority := func(key string) int {
		for i, p := range statPriority {
			if p == key {
				return i
			}
		}
		return len(statPriority)
	}

	sort.Slice(keys, func(i, j int) bool {
		pi, pj := priority(keys[i]), priority(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	return keys
}
