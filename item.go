package hublinks

// Item represents one extracted title+link record.
type Item struct {
	// Title is the trimmed visible text of the matched link. Never empty.
	Title string `json:"title"`

	// URL is the absolute URL resolved against the page origin. It is the
	// record's identity: two links resolving to the same URL are the same
	// item, first occurrence wins.
	URL string `json:"url"`

	// Number is a "#<digits>" label parsed from pull request and issue
	// paths. Empty for all other link shapes. Decorative, not unique.
	Number string `json:"number,omitempty"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if i.URL == "" {
		return Errorf(EINVALID, "item URL required")
	}
	return nil
}

// RepoContext identifies the repository a page belongs to, parsed from the
// first two path segments. Both fields are empty when the path is shorter.
type RepoContext struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// ExtractionResult is the outcome of one extraction pass over a page.
// It is built fresh on every request and never cached.
type ExtractionResult struct {
	Success     bool        `json:"success"`
	PageKind    PageKind    `json:"pageKind,omitempty"`
	PageLabel   string      `json:"pageLabel,omitempty"`
	RepoContext RepoContext `json:"repoContext"`
	URL         string      `json:"url,omitempty"`
	Items       []Item      `json:"items"`

	// Err is a human-readable reason, present iff Success is false.
	// "No items" is a normal reportable outcome, not a raised error.
	Err string `json:"error,omitempty"`
}

// ItemSelector extracts items from the HTML of one page category.
type ItemSelector interface {
	// ExtractItems parses HTML and returns the extracted items in document
	// order, deduplicated by resolved URL. The pageURL is used to resolve
	// relative hrefs. An empty result is not an error.
	ExtractItems(html string, pageURL string) ([]Item, error)

	// Kind returns the page category this selector is tuned for.
	Kind() PageKind
}

// SelectorRegistry manages category-specific item selectors.
// Registration order is preserved: List returns kinds in the order they
// were registered, so exhaustive retries are deterministic.
type SelectorRegistry interface {
	// Get returns the selector for a kind, or nil if none is registered.
	Get(kind PageKind) ItemSelector

	// Register adds a selector for a kind, replacing any existing one.
	Register(kind PageKind, selector ItemSelector)

	// List returns all registered kinds in registration order.
	List() []PageKind
}

// Extractor runs one full extraction pass against a page snapshot.
type Extractor interface {
	// Extract classifies the page, applies the matching category selector,
	// and falls back to broader strategies when it yields nothing. The
	// returned result has Success=false (with a reason) when every strategy
	// came up empty; an error is returned only for invalid inputs.
	Extract(html string, pageURL string) (*ExtractionResult, error)
}
