// Package markdown renders pipe tables for the generated report.
package markdown

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer provides Markdown table rendering utilities.
type Renderer interface {
	Table(headers []string, rows [][]string) string
	WriteTable(w io.Writer, headers []string, rows [][]string)
}

// renderer implements Renderer interface
type renderer struct {
	log logrus.FieldLogger
}

// New creates a new Markdown table renderer.
func New(log logrus.FieldLogger) Renderer {
	return &renderer{
		log: log.WithField("component", "markdown.renderer"),
	}
}

// Table renders a table to a string with the given headers and rows.
func (r *renderer) Table(headers []string, rows [][]string) string {
	buf := &bytes.Buffer{}
	r.WriteTable(buf, headers, rows)

	return buf.String()
}

// WriteTable renders a GitHub-flavored pipe table: column separators only,
// no outer horizontal rules, headers and cells left-aligned verbatim.
func (r *renderer) WriteTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("|")
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})

	table.AppendBulk(rows)
	table.Render()
}
