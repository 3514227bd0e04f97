package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/hublinks/hublinks/cmd/hublinks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd_Run(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, url string) (string, string, error) {
		t.Helper()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}
		cmd := &main.ClassifyCmd{URL: url}
		err := cmd.Run(deps)
		return stdout.String(), stderr.String(), err
	}

	t.Run("classifies a pull request list with repo context", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, "https://github.com/golang/go/pulls")

		require.NoError(t, err)
		assert.Contains(t, stdout, "kind:  pulls")
		assert.Contains(t, stdout, "label: Pull Requests")
		assert.Contains(t, stdout, "owner: golang")
		assert.Contains(t, stdout, "repo:  go")
		assert.Empty(t, stderr)
	})

	t.Run("distinguishes a single milestone from the milestone list", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "https://github.com/golang/go/milestone/371")

		require.NoError(t, err)
		assert.Contains(t, stdout, "kind:  milestone")
		assert.Contains(t, stdout, "label: Milestone")
	})

	t.Run("marks search results as generic", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "https://github.com/search?q=goquery")

		require.NoError(t, err)
		assert.Contains(t, stdout, "kind:  (generic)")
		assert.Contains(t, stdout, "label: Search Results")
	})

	t.Run("marks unknown paths as generic", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "https://github.com/trending")

		require.NoError(t, err)
		assert.Contains(t, stdout, "kind:  (generic)")
		assert.Contains(t, stdout, "label: Items")
	})

	t.Run("omits repo context for the site root", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "https://github.com/")

		require.NoError(t, err)
		assert.NotContains(t, stdout, "owner:")
		assert.NotContains(t, stdout, "repo:")
	})

	t.Run("returns error for an unparseable URL", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, ":not-a-url")

		require.Error(t, err)
		assert.Contains(t, stderr, "invalid URL")
		assert.Empty(t, stdout)
	})
}
