// Package report collects analysis results as an ordered name-to-result
// mapping and renders it as text, markdown, or JSON. Rendering is a
// peripheral concern: nothing in the analyses depends on it.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmaynor/llm-convo/pkg/convo/freq"
	"github.com/dmaynor/llm-convo/pkg/convo/internalerr"
	"github.com/dmaynor/llm-convo/pkg/convo/similarity"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Section is one named analysis result. Value is one of []string,
// []freq.WordCount, or []similarity.Pair.
type Section struct {
	Key   string
	Value any
}

// Report is an ordered collection of sections, keyed by analysis name.
type Report struct {
	sections []Section
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add appends a section. Keys are expected to be unique; insertion order
// is the render order.
func (r *Report) Add(key string, value any) {
	r.sections = append(r.sections, Section{Key: key, Value: value})
}

// Sections returns the sections in insertion order.
func (r *Report) Sections() []Section {
	return r.sections
}

// Len returns the number of sections.
func (r *Report) Len() int {
	return len(r.sections)
}

// MarshalJSON renders the report as a JSON object whose keys keep
// insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.Value)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Render serializes the report in the requested format.
func Render(r *Report, format string) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case FormatMarkdown:
		return renderMarkdown(r), nil
	case FormatText:
		return renderText(r), nil
	default:
		return "", fmt.Errorf("output format %q: %w", format, internalerr.ErrInvalidInput)
	}
}

func renderMarkdown(r *Report) string {
	var b strings.Builder
	for i, s := range r.sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "## %s\n", s.Key)
		for _, item := range itemize(s.Value) {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderText(r *Report) string {
	var b strings.Builder
	for i, s := range r.sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", s.Key, strings.Join(itemize(s.Value), ", "))
	}
	return b.String()
}

// itemize flattens a section value into printable entries.
func itemize(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []freq.WordCount:
		items := make([]string, len(v))
		for i, wc := range v {
			items[i] = fmt.Sprintf("%s: %d", wc.Word, wc.Count)
		}
		return items
	case []similarity.Pair:
		items := make([]string, len(v))
		for i, p := range v {
			items[i] = fmt.Sprintf("%q ~ %q (%.2f)", p.First, p.Second, p.Score)
		}
		return items
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}
