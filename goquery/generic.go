package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hublinks/hublinks"
)

var _ hublinks.ItemSelector = (*GenericSelector)(nil)

// GenericSelector approximates "item titles" on layouts no category
// selector understands. It scans broad structural candidates and applies
// exclusion heuristics tuned for precision: picking up navigation chrome is
// worse than missing the odd item, so many true candidates are rejected.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Kind returns the generic marker kind.
func (s *GenericSelector) Kind() hublinks.PageKind {
	return hublinks.KindGeneric
}

// Candidate patterns for unknown layouts: primary-styled links, links
// inside headings, links inside row/list/article containers, and links
// carrying a hovercard type marker.
var genericCandidates = []string{
	`a.Link--primary[href]`,
	`a.markdown-title[href]`,
	`h1 a[href], h2 a[href], h3 a[href], h4 a[href], h5 a[href], h6 a[href]`,
	`.Box-row a[href], li a[href], article a[href], tr a[href]`,
	`a[data-hovercard-type][href]`,
}

// Route prefixes that never lead to content items: auth, account,
// settings, and marketing pages.
var genericDenyPrefixes = []string{
	"/login", "/logout", "/join", "/signup", "/sessions", "/password_reset",
	"/settings", "/notifications", "/account", "/pricing", "/features",
	"/marketplace", "/sponsors", "/about", "/contact", "/customer-stories",
	"/security", "/site",
}

// Static asset suffixes that mark a link as a resource, not an item.
var genericAssetSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico",
	".css", ".js", ".map", ".zip", ".gz", ".woff", ".woff2", ".ttf",
}

// Bounds on plausible title length in runes. Shorter is chrome ("Edit",
// "..."), longer is a body excerpt rather than a title.
const (
	genericMinTitleLen = 3
	genericMaxTitleLen = 300
)

// ExtractItems parses HTML and returns items found by the generic
// heuristics, in candidate-pattern order then document order, deduplicated
// by resolved URL.
func (s *GenericSelector) ExtractItems(html string, pageURL string) ([]hublinks.Item, error) {
	doc, base, err := parseDocument(html, pageURL)
	if err != nil {
		return nil, err
	}

	c := newCollector(base)
	for _, candidate := range genericCandidates {
		doc.Find(candidate).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || strings.HasPrefix(href, "#") {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == nil {
				return
			}

			// Cross-origin links are never items.
			if resolved.Host != base.Host {
				return
			}

			// Same-path targets are anchor or pagination links.
			if resolved.Path == base.Path {
				return
			}

			if isDeniedPath(resolved.Path) {
				return
			}

			title := strings.TrimSpace(sel.Text())
			if n := len([]rune(title)); n < genericMinTitleLen || n > genericMaxTitleLen {
				return
			}

			// Author and assignee avatars link to profiles, not items.
			if hovercard, _ := sel.Attr("data-hovercard-type"); hovercard == "user" || hovercard == "organization" {
				return
			}

			if !hasTitleSignal(sel) {
				return
			}

			c.add(href, title)
		})
	}
	return c.items, nil
}

// isDeniedPath reports whether the path is a non-content route or a static
// asset.
func isDeniedPath(path string) bool {
	lower := strings.ToLower(path)
	for _, prefix := range genericDenyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, suffix := range genericAssetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// hasTitleSignal reports whether the link looks like an item title: a
// primary-title style marker, containment in a heading, or containment in a
// recognized row/list/article container.
func hasTitleSignal(sel *goquery.Selection) bool {
	if sel.HasClass("Link--primary") || sel.HasClass("markdown-title") {
		return true
	}
	if sel.Closest("h1, h2, h3, h4, h5, h6").Length() > 0 {
		return true
	}
	return sel.Closest(".Box-row, li, article, tr").Length() > 0
}
