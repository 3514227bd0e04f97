// Package mock provides function-field mock implementations of the
// hublinks interfaces for testing.
package mock

import "github.com/hublinks/hublinks"

var _ hublinks.ItemSelector = (*ItemSelector)(nil)

// ItemSelector is a mock implementation of hublinks.ItemSelector.
type ItemSelector struct {
	ExtractItemsFn func(html string, pageURL string) ([]hublinks.Item, error)
	KindFn         func() hublinks.PageKind
}

func (s *ItemSelector) ExtractItems(html string, pageURL string) ([]hublinks.Item, error) {
	return s.ExtractItemsFn(html, pageURL)
}

func (s *ItemSelector) Kind() hublinks.PageKind {
	if s.KindFn != nil {
		return s.KindFn()
	}
	return hublinks.KindNone
}

var _ hublinks.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of hublinks.SelectorRegistry.
type SelectorRegistry struct {
	GetFn      func(kind hublinks.PageKind) hublinks.ItemSelector
	RegisterFn func(kind hublinks.PageKind, selector hublinks.ItemSelector)
	ListFn     func() []hublinks.PageKind
}

func (r *SelectorRegistry) Get(kind hublinks.PageKind) hublinks.ItemSelector {
	return r.GetFn(kind)
}

func (r *SelectorRegistry) Register(kind hublinks.PageKind, selector hublinks.ItemSelector) {
	r.RegisterFn(kind, selector)
}

func (r *SelectorRegistry) List() []hublinks.PageKind {
	return r.ListFn()
}
