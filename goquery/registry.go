package goquery

import "github.com/hublinks/hublinks"

var _ hublinks.SelectorRegistry = (*Registry)(nil)

// Registry manages category-specific item selectors. Unlike a plain map it
// remembers registration order, so List is stable and the orchestrator's
// exhaustive retry is deterministic.
type Registry struct {
	kinds     []hublinks.PageKind
	selectors map[hublinks.PageKind]hublinks.ItemSelector
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		selectors: make(map[hublinks.PageKind]hublinks.ItemSelector),
	}
}

// Get returns the selector for a kind.
// Returns nil if no selector is registered for the kind.
func (r *Registry) Get(kind hublinks.PageKind) hublinks.ItemSelector {
	return r.selectors[kind]
}

// Register adds a selector for a kind. Replacing an existing selector keeps
// the kind's original position in the order.
func (r *Registry) Register(kind hublinks.PageKind, selector hublinks.ItemSelector) {
	if _, ok := r.selectors[kind]; !ok {
		r.kinds = append(r.kinds, kind)
	}
	r.selectors[kind] = selector
}

// List returns all registered kinds in registration order.
func (r *Registry) List() []hublinks.PageKind {
	kinds := make([]hublinks.PageKind, len(r.kinds))
	copy(kinds, r.kinds)
	return kinds
}
