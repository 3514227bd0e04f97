// Package batch extracts items from several explicitly given list pages.
// It coordinates fetching, rate limiting, and extraction; it never
// discovers URLs on its own (no pagination, no crawling).
package batch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/hublinks/hublinks"
	"github.com/hublinks/hublinks/bloom"
	"golang.org/x/sync/errgroup"
)

// Runner runs extraction over a set of page URLs.
type Runner struct {
	Fetcher     hublinks.Fetcher
	Extractor   hublinks.Extractor
	Limiter     hublinks.DomainLimiter
	Concurrency int
}

// PageResult holds the outcome of processing one URL.
type PageResult struct {
	Position int
	URL      string

	// ContentHash fingerprints the fetched HTML so callers can tell when
	// two URLs served identical markup.
	ContentHash string

	Result *hublinks.ExtractionResult
	Err    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a run.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches and extracts every URL. Duplicate URLs (after fragment
// stripping) are processed once. Results come back indexed by the deduped
// input order; per-URL failures are recorded in their PageResult and never
// abort the run.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]PageResult, error) {
	if r.Fetcher == nil || r.Extractor == nil {
		return nil, hublinks.Errorf(hublinks.EINVALID, "batch runner requires a fetcher and an extractor")
	}

	deduped := dedupeURLs(urls)
	total := len(deduped)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]PageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range deduped {
		i, pageURL := i, pageURL
		g.Go(func() error {
			result := r.processURL(gctx, i, pageURL)
			results[i] = result

			done := int(completed.Add(1))
			if progress != nil {
				if result.Err != nil {
					progress(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, URL: pageURL, Error: result.Err})
				} else {
					progress(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: pageURL})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results, nil
}

// processURL fetches and extracts one page.
func (r *Runner) processURL(ctx context.Context, position int, pageURL string) PageResult {
	result := PageResult{Position: position, URL: pageURL}

	if r.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.Err = hublinks.Errorf(hublinks.EINVALID, "invalid page URL: %v", err)
			return result
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			result.Err = err
			return result
		}
	}

	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.Err = err
		return result
	}
	result.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(html))

	extraction, err := r.Extractor.Extract(html, pageURL)
	if err != nil {
		result.Err = err
		return result
	}
	result.Result = extraction
	return result
}

// dedupeURLs drops repeated URLs, ignoring fragments, preserving first-seen
// order. The Bloom filter is sized generously for a CLI-scale batch; a
// false positive only means one extra URL is skipped.
func dedupeURLs(urls []string) []string {
	seen := bloom.NewFilter(uint(len(urls))*2+64, 0.001)
	deduped := make([]string, 0, len(urls))
	for _, u := range urls {
		key := u
		if idx := strings.Index(key, "#"); idx != -1 {
			key = key[:idx]
		}
		if seen.Test(key) {
			continue
		}
		seen.Add(key)
		deduped = append(deduped, key)
	}
	return deduped
}

// Merge flattens successful results into one item sequence, deduplicated by
// URL, preserving page order then item order.
func Merge(results []PageResult) []hublinks.Item {
	seen := make(map[string]bool)
	var items []hublinks.Item
	for _, r := range results {
		if r.Err != nil || r.Result == nil || !r.Result.Success {
			continue
		}
		for _, item := range r.Result.Items {
			if seen[item.URL] {
				continue
			}
			seen[item.URL] = true
			items = append(items, item)
		}
	}
	return items
}
