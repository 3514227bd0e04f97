package bloom_test

import (
	"fmt"
	"testing"

	"github.com/hublinks/hublinks/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://github.com/acme/widgets/pulls"))
	f.Add("https://github.com/acme/widgets/pulls")
	assert.True(t, f.Test("https://github.com/acme/widgets/pulls"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	const numURLs = 5000
	f := bloom.NewFilter(numURLs, 0.01)

	for i := 0; i < numURLs; i++ {
		f.Add(fmt.Sprintf("https://github.com/acme/widgets/issues/%d", i))
	}
	for i := 0; i < numURLs; i++ {
		assert.True(t, f.Test(fmt.Sprintf("https://github.com/acme/widgets/issues/%d", i)))
	}
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("https://github.com/acme/widgets/pull/%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, float64(count), 10)
}
