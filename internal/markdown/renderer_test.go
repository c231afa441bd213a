package markdown

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() Renderer {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(log)
}

func TestTable(t *testing.T) {
	out := newTestRenderer().Table(
		[]string{"Metric", "Value"},
		[][]string{
			{"Total Requests", "100"},
			{"Request Rate", "10.00/s"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Header row keeps its casing, every line is a pipe row, and the
	// second line is the header separator.
	assert.Contains(t, lines[0], "Metric")
	assert.Contains(t, lines[0], "Value")
	assert.Regexp(t, `^\|[-|]+\|$`, lines[1])
	assert.Contains(t, lines[2], "Total Requests")
	assert.Contains(t, lines[3], "10.00/s")

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "|"), "line %q should start with a pipe", line)
		assert.True(t, strings.HasSuffix(line, "|"), "line %q should end with a pipe", line)
	}
}

func TestTable_NoRows(t *testing.T) {
	out := newTestRenderer().Table([]string{"Metric", "Value"}, nil)

	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "Value")
}
