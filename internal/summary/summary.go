// Package summary defines the canonical in-memory model for a k6 test run
// and the parser for the handleSummary JSON document.
package summary

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Summary is the root aggregate: every named metric, the optional check
// group tree, and the optional run state. It is built once by a parser and
// never mutated afterwards.
type Summary struct {
	Metrics   map[string]Metric `json:"metrics"`
	RootGroup *Group            `json:"root_group"`
	State     *State            `json:"state"`
}

// Metric is one named measurement stream with its aggregated statistics.
type Metric struct {
	Kind       MetricKind
	Contains   string
	Values     map[string]float64
	Thresholds map[string]Threshold
}

// Threshold records the evaluated outcome of one threshold expression.
type Threshold struct {
	OK bool `json:"ok"`
}

// Group is a node in the check group tree. Parents own their children;
// there are no back-references.
type Group struct {
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
	Checks []Check `json:"checks"`
}

// Check is a named assertion with cumulative pass/fail counts.
type Check struct {
	Name   string `json:"name"`
	Passes uint64 `json:"passes"`
	Fails  uint64 `json:"fails"`
}

// State carries the wall-clock span of the test run.
type State struct {
	TestRunDurationMS float64 `json:"testRunDurationMs"`
}

// AllChecks flattens the group tree in pre-order: a group's own checks
// first, then each child group's in declaration order.
func (g *Group) AllChecks() []Check {
	if g == nil {
		return nil
	}

	checks := make([]Check, 0, len(g.Checks))
	checks = append(checks, g.Checks...)

	for i := range g.Groups {
		checks = append(checks, g.Groups[i].AllChecks()...)
	}

	return checks
}

// UnmarshalJSON decodes a metric strictly: the "type" field is required and
// must name a known kind, and every entry under "values" must be numeric.
// Everything else defaults to empty.
func (m *Metric) UnmarshalJSON(raw []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}

	kindRaw, ok := fields["type"]
	if !ok {
		return errors.New(`metric is missing required field "type"`)
	}

	var kindName string
	if err := json.Unmarshal(kindRaw, &kindName); err != nil {
		return fmt.Errorf(`metric field "type": %w`, err)
	}
	if err := m.Kind.UnmarshalText([]byte(kindName)); err != nil {
		return err
	}

	if containsRaw, ok := fields["contains"]; ok {
		if err := json.Unmarshal(containsRaw, &m.Contains); err != nil {
			return fmt.Errorf(`metric field "contains": %w`, err)
		}
	}

	m.Values = make(map[string]float64)
	if valuesRaw, ok := fields["values"]; ok && string(valuesRaw) != "null" {
		if err := json.Unmarshal(valuesRaw, &m.Values); err != nil {
			return fmt.Errorf(`metric field "values": %w`, err)
		}
	}

	m.Thresholds = make(map[string]Threshold)
	if thresholdsRaw, ok := fields["thresholds"]; ok && string(thresholdsRaw) != "null" {
		if err := json.Unmarshal(thresholdsRaw, &m.Thresholds); err != nil {
			return fmt.Errorf(`metric field "thresholds": %w`, err)
		}
	}

	return nil
}

// Parse deserializes a handleSummary document into the canonical model.
// Statistic values are taken verbatim from the input, never recomputed.
// A document whose shape is incompatible with the model is a fatal error.
func Parse(data []byte) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse summary document: %w", err)
	}

	if s.Metrics == nil {
		s.Metrics = make(map[string]Metric)
	}

	return &s, nil
}
