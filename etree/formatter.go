// Package etree provides an XML-tree-based implementation of
// hublinks.Formatter that renders items as an HTML list snippet. Building
// the snippet as a tree keeps titles and URLs correctly escaped.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/hublinks/hublinks"
)

var _ hublinks.Formatter = (*Formatter)(nil)

// Formatter renders items as a <ul> of hyperlinks, the rich-clipboard
// flavor of the extraction output.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Name returns the formatter's identifier.
func (f *Formatter) Name() string { return "html" }

// Format renders the items. An empty slice renders as an empty string.
func (f *Formatter) Format(items []hublinks.Item) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	doc := etree.NewDocument()
	ul := doc.CreateElement("ul")
	for _, item := range items {
		a := ul.CreateElement("li").CreateElement("a")
		a.CreateAttr("href", item.URL)
		title := item.Title
		if item.Number != "" {
			title += " " + item.Number
		}
		a.SetText(title)
	}

	doc.Indent(2)
	var b strings.Builder
	if _, err := doc.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
