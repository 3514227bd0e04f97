package mock

import "github.com/hublinks/hublinks"

var _ hublinks.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hublinks.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*hublinks.ExtractionResult, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*hublinks.ExtractionResult, error) {
	return e.ExtractFn(html, pageURL)
}
