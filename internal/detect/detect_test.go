package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Format
	}{
		{
			name:     "handleSummary document",
			content:  `{"metrics":{"http_reqs":{"type":"counter"}}}`,
			expected: FormatSummary,
		},
		{
			name:     "handleSummary with leading whitespace",
			content:  "\n\t  {\"metrics\":{}}",
			expected: FormatSummary,
		},
		{
			name: "event log records",
			content: `{"type":"Metric","metric":"http_reqs","data":{}}
{"type":"Point","metric":"http_reqs","data":{"value":1}}`,
			expected: FormatEventLog,
		},
		{
			name:     "JSON object without metrics key",
			content:  `{"type":"Metric","metric":"http_reqs","data":{}}`,
			expected: FormatEventLog,
		},
		{
			name:     "malformed leading brace falls through",
			content:  `{not json at all`,
			expected: FormatEventLog,
		},
		{
			name:     "empty input",
			content:  "",
			expected: FormatEventLog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.content))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "handleSummary JSON", FormatSummary.String())
	assert.Equal(t, "event log (--out json)", FormatEventLog.String())
}
