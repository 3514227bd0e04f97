package goquery

import (
	"net/url"

	"github.com/hublinks/hublinks"
)

var _ hublinks.Extractor = (*Extractor)(nil)

// NoItemsMessage is the reason reported when every strategy came up empty.
const NoItemsMessage = "No extractable items found on this page."

// Extractor orchestrates one extraction pass: classify the page, run the
// matching category selector, optionally retry every registered category,
// then fall back to the generic heuristics. "No items" is a normal result,
// never an error.
type Extractor struct {
	registry   hublinks.SelectorRegistry
	generic    hublinks.ItemSelector
	exhaustive bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithExhaustiveFallback controls whether the extractor retries every
// registered category when the classified one yields nothing. The retry
// can surface a match from an unrelated category before the more
// conservative generic heuristics get a chance, so callers who prefer
// precision over recall may disable it. Enabled by default.
func WithExhaustiveFallback(enabled bool) Option {
	return func(e *Extractor) {
		e.exhaustive = enabled
	}
}

// NewExtractor creates an Extractor over the given registry and generic
// fallback selector.
func NewExtractor(registry hublinks.SelectorRegistry, generic hublinks.ItemSelector, opts ...Option) *Extractor {
	e := &Extractor{
		registry:   registry,
		generic:    generic,
		exhaustive: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full extraction pass against a snapshot of the page.
// An error is returned only for an unparsable page URL; every per-element
// problem during extraction is handled by skipping the element.
func (e *Extractor) Extract(html string, pageURL string) (*hublinks.ExtractionResult, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, hublinks.Errorf(hublinks.EINVALID, "invalid page URL: %v", err)
	}

	cls := hublinks.Classify(base.Path, base.RawQuery)
	repoCtx := hublinks.ParseRepoContext(base.Path)

	var items []hublinks.Item

	// A KindNone classification routes directly to the generic heuristics;
	// the category stages only apply when a specific kind was classified.
	if cls.Kind != hublinks.KindNone {
		// Stage 1: the classified category's selector.
		if sel := e.registry.Get(cls.Kind); sel != nil {
			items = e.run(sel, html, pageURL)
		}

		// Stage 2: retry every registered category in order, taking the
		// first that yields anything. A defensive legacy path, not a merge.
		if len(items) == 0 && e.exhaustive {
			for _, kind := range e.registry.List() {
				if kind == cls.Kind {
					continue
				}
				if items = e.run(e.registry.Get(kind), html, pageURL); len(items) > 0 {
					break
				}
			}
		}
	}

	// Stage 3: generic heuristics.
	if len(items) == 0 {
		items = e.run(e.generic, html, pageURL)
	}

	if len(items) == 0 {
		return &hublinks.ExtractionResult{
			Success:     false,
			PageKind:    hublinks.KindNone,
			RepoContext: repoCtx,
			Items:       []hublinks.Item{},
			Err:         NoItemsMessage,
		}, nil
	}

	kind := cls.Kind
	if kind == hublinks.KindNone {
		kind = hublinks.KindGeneric
	}
	return &hublinks.ExtractionResult{
		Success:     true,
		PageKind:    kind,
		PageLabel:   cls.Label,
		RepoContext: repoCtx,
		URL:         pageURL,
		Items:       items,
	}, nil
}

// run applies one selector, converting its errors into an empty result so a
// single bad strategy never aborts the pass.
func (e *Extractor) run(sel hublinks.ItemSelector, html string, pageURL string) []hublinks.Item {
	items, err := sel.ExtractItems(html, pageURL)
	if err != nil {
		return nil
	}
	return items
}
