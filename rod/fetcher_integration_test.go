//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hublinks/hublinks/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_RendersListPage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, "https://github.com/golang/go/milestones")
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	lower := strings.ToLower(strings.TrimSpace(html))
	assert.True(t, strings.HasPrefix(lower, "<!doctype html>") || strings.HasPrefix(lower, "<html"),
		"expected valid HTML document start")
	assert.Contains(t, html, "</body>", "expected closing body tag")
	assert.Contains(t, html, "milestone", "expected rendered milestone content")
}

func TestFetcher_Integration_ContextCancellation(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, "https://github.com/golang/go/milestones")
	assert.Error(t, err)
}
