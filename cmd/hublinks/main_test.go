package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/hublinks/hublinks"
	main "github.com/hublinks/hublinks/cmd/hublinks"
	"github.com/hublinks/hublinks/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage goes to stdout when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: hublinks")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage and return an error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: hublinks")
}

func TestRun_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts and prints items end to end", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		var closed bool
		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetchedURL = url
				return `<html><body>
					<div class="js-issue-row">
						<a class="Link--primary" href="/golang/go/pull/1234">Fix scheduler race</a>
					</div>
				</body></html>`, nil
			},
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://github.com/golang/go/pulls"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "https://github.com/golang/go/pulls", fetchedURL)
		assert.Contains(t, stdout.String(), "Fix scheduler race #1234")
		assert.Contains(t, stdout.String(), "https://github.com/golang/go/pull/1234")
		assert.True(t, closed, "fetcher should be closed after the run")
	})

	t.Run("prints the empty-state message for a page without items", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><p>Nothing here.</p></body></html>", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://github.com/golang/go/pulls"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No extractable items found on this page.")
	})

	t.Run("verbose flag logs to stderr", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "-v", "https://github.com/golang/go/pulls"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "extraction_id=")
	})

	t.Run("uses the injected extractor", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "<html></html>", nil },
		}
		m.Extractor = &mock.Extractor{
			ExtractFn: func(_, _ string) (*hublinks.ExtractionResult, error) {
				return &hublinks.ExtractionResult{
					Success: true,
					Items:   []hublinks.Item{{Title: "Injected", URL: "https://example.com/x"}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://github.com/o/r/pulls"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Injected")
	})
}

func TestRun_Classify(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify", "https://github.com/golang/go/issues"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "kind:  issues")
	assert.Contains(t, stdout.String(), "label: Issues")
}

func TestRun_Kinds(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"kinds"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "pulls")
	assert.Contains(t, stdout.String(), "milestones")
}

func TestRun_Batch(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return `<html><body>
				<div class="js-issue-row">
					<a class="Link--primary" href="/golang/go/issues/777">Panic in net/http</a>
				</div>
			</body></html>`, nil
		},
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"batch",
		"https://github.com/golang/go/issues",
		"https://github.com/golang/go/issues#open",
		"--rate", "100",
	}, stdout, stderr)

	require.NoError(t, err)
	// The fragment duplicate collapses into a single fetched page.
	assert.Contains(t, stderr.String(), "extracting 1 pages")
	assert.Contains(t, stdout.String(), "Panic in net/http #777")
}
