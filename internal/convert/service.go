// Package convert ties format detection, parsing, and report generation
// into the single conversion pipeline.
package convert

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/k6md/internal/detect"
	"github.com/ethpandaops/k6md/internal/eventlog"
	"github.com/ethpandaops/k6md/internal/markdown"
	"github.com/ethpandaops/k6md/internal/report"
	"github.com/ethpandaops/k6md/internal/summary"
)

// Service converts raw k6 result text into a Markdown report. Each call is
// an independent, stateless conversion over in-memory data.
type Service interface {
	Start(ctx context.Context) error
	Stop() error
	Convert(ctx context.Context, content string) (string, detect.Format, error)
}

// service implements Service interface
type service struct {
	log      logrus.FieldLogger
	eventlog *eventlog.Parser
	report   *report.Generator
}

// New creates a conversion service using the given logger.
func New(log logrus.FieldLogger) Service {
	return &service{
		log:      log.WithField("component", "convert"),
		eventlog: eventlog.New(log),
		report:   report.New(log, markdown.New(log)),
	}
}

func (s *service) Start(_ context.Context) error {
	s.log.Debug("converter started")
	return nil
}

func (s *service) Stop() error {
	s.log.Debug("converter stopped")
	return nil
}

// Convert detects the input format, parses it into the canonical model, and
// renders the report. Only the handleSummary path can fail: a document that
// does not match the model is fatal, while the event-log path degrades
// gracefully on malformed lines.
func (s *service) Convert(_ context.Context, content string) (string, detect.Format, error) {
	detected := detect.Detect(content)

	var (
		parsed *summary.Summary
		err    error
	)

	switch detected {
	case detect.FormatSummary:
		parsed, err = summary.Parse([]byte(content))
		if err != nil {
			return "", detected, fmt.Errorf("invalid handleSummary document: %w", err)
		}
	default:
		parsed = s.eventlog.Parse(content)
	}

	s.log.WithFields(logrus.Fields{
		"format":  detected.String(),
		"metrics": len(parsed.Metrics),
	}).Debug("parsed input")

	return s.report.Generate(parsed), detected, nil
}
