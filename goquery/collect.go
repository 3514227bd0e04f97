// Package goquery provides CSS-selector-based implementations of the
// hublinks extraction interfaces: the link collector, the per-category
// selector table, the generic fallback, and the extraction orchestrator.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hublinks/hublinks"
)

// Spec is the declarative configuration for one page category: an ordered
// list of CSS selectors plus an optional shape filter applied to each raw
// href. Later, broader selectors act as a safety net for elements the
// earlier, narrower ones missed; the seen-set keeps the broad net from
// duplicating items the narrow ones already found.
type Spec struct {
	Selectors []string
	URLFilter *regexp.Regexp
}

// collector accumulates deduplicated items across selector passes.
// The seen-set is scoped to one extraction call, never shared.
type collector struct {
	base  *url.URL
	seen  map[string]bool
	items []hublinks.Item
}

func newCollector(base *url.URL) *collector {
	return &collector{base: base, seen: make(map[string]bool)}
}

// collect runs the selectors in order against the document, matching
// elements in document order within each selector. Emission order is
// therefore "selector list order, then document order"; this is the final
// display order and must stay stable across calls.
func (c *collector) collect(doc *goquery.Document, spec Spec) {
	for _, selector := range spec.Selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}
			if spec.URLFilter != nil && !spec.URLFilter.MatchString(href) {
				return
			}
			c.add(href, sel.Text())
		})
	}
}

// add resolves the href, applies the dedup and non-empty-title rules, and
// appends the item. Malformed hrefs are skipped silently.
func (c *collector) add(href, text string) {
	resolved := resolveURL(c.base, href)
	if resolved == nil {
		return
	}
	key := resolved.String()
	if c.seen[key] {
		return
	}
	title := strings.TrimSpace(text)
	if title == "" {
		return
	}
	c.seen[key] = true
	c.items = append(c.items, hublinks.Item{
		Title:  title,
		URL:    key,
		Number: hublinks.ParseItemNumber(resolved.Path),
	})
}

// resolveURL resolves an href against the page URL, stripping the fragment
// so anchor variants of the same target deduplicate. Returns nil for hrefs
// that cannot be parsed.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved
}

// parseDocument parses the page HTML and URL for one extraction pass.
func parseDocument(html string, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, hublinks.Errorf(hublinks.EINVALID, "invalid page URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, hublinks.Errorf(hublinks.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}
