package hublinks

import (
	"encoding/csv"
	"encoding/json"
	"strings"
)

// Formatter renders extracted items as text in one representation.
type Formatter interface {
	// Format renders the items. An empty slice renders as an empty string.
	Format(items []Item) (string, error)

	// Name returns the formatter's identifier (e.g., "markdown", "csv").
	Name() string
}

// Compile-time interface verification.
var (
	_ Formatter = (*MarkdownFormatter)(nil)
	_ Formatter = (*PlainFormatter)(nil)
	_ Formatter = (*CSVFormatter)(nil)
	_ Formatter = (*JSONFormatter)(nil)
)

// MarkdownFormatter renders items as a markdown list of links.
type MarkdownFormatter struct{}

// Name returns the formatter's identifier.
func (f *MarkdownFormatter) Name() string { return "markdown" }

// Format renders one "- [Title](url)" line per item. Square brackets in
// titles are escaped so they cannot terminate the link text early.
func (f *MarkdownFormatter) Format(items []Item) (string, error) {
	var b strings.Builder
	for _, item := range items {
		title := strings.NewReplacer("[", `\[`, "]", `\]`).Replace(item.Title)
		b.WriteString("- [")
		b.WriteString(title)
		if item.Number != "" {
			b.WriteString(" ")
			b.WriteString(item.Number)
		}
		b.WriteString("](")
		b.WriteString(item.URL)
		b.WriteString(")\n")
	}
	return b.String(), nil
}

// PlainFormatter renders items as "Title - url" lines.
type PlainFormatter struct{}

// Name returns the formatter's identifier.
func (f *PlainFormatter) Name() string { return "plain" }

// Format renders one "Title - url" line per item.
func (f *PlainFormatter) Format(items []Item) (string, error) {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Title)
		if item.Number != "" {
			b.WriteString(" ")
			b.WriteString(item.Number)
		}
		b.WriteString(" - ")
		b.WriteString(item.URL)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// CSVFormatter renders items as CSV rows with a header.
type CSVFormatter struct{}

// Name returns the formatter's identifier.
func (f *CSVFormatter) Name() string { return "csv" }

// Format renders a "title,url,number" header followed by one row per item.
func (f *CSVFormatter) Format(items []Item) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"title", "url", "number"}); err != nil {
		return "", err
	}
	for _, item := range items {
		if err := w.Write([]string{item.Title, item.URL, item.Number}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// JSONFormatter renders items as an indented JSON array.
type JSONFormatter struct{}

// Name returns the formatter's identifier.
func (f *JSONFormatter) Name() string { return "json" }

// Format renders the items as JSON. An empty slice renders as "[]".
func (f *JSONFormatter) Format(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
