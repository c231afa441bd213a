// Package detect sniffs which of the two k6 output formats a raw input is.
package detect

import (
	"encoding/json"
	"strings"
)

// Format identifies a k6 result input format.
type Format int

const (
	// FormatEventLog is the newline-delimited `--out json` record stream.
	FormatEventLog Format = iota
	// FormatSummary is the single handleSummary JSON document.
	FormatSummary
)

func (f Format) String() string {
	if f == FormatSummary {
		return "handleSummary JSON"
	}

	return "event log (--out json)"
}

// Detect classifies raw input text. A single JSON object with a top-level
// "metrics" key is a handleSummary document; anything else, including text
// with a malformed leading brace, falls through to the event-log format.
// This is a best-effort sniff, not validation, and never fails.
func Detect(content string) Format {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return FormatEventLog
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return FormatEventLog
	}

	if _, ok := doc["metrics"]; ok {
		return FormatSummary
	}

	return FormatEventLog
}
