package mock

import (
	"context"

	"github.com/hublinks/hublinks"
)

var _ hublinks.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hublinks.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

var _ hublinks.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of hublinks.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn != nil {
		return l.WaitFn(ctx, domain)
	}
	return nil
}
