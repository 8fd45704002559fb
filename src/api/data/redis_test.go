package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verilens/factcheck-api/src/api/types"
)

func TestCacheKey(t *testing.T) {
	a := CacheKey(types.KindURL, "https://example.com")
	b := CacheKey(types.KindURL, "https://example.com")
	assert.Equal(t, a, b, "same input must hash to the same key")

	assert.NotEqual(t, a, CacheKey(types.KindURL, "https://example.org"))
	assert.NotEqual(t, a, CacheKey(types.KindTitle, "https://example.com"),
		"kind participates in the key")

	assert.Contains(t, a, verdictPrefix)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *VerdictCache

	raw, ok := c.Get(context.Background(), types.KindURL, "https://example.com")
	assert.False(t, ok)
	assert.Empty(t, raw)

	// Must not panic.
	c.Put(context.Background(), types.KindURL, "https://example.com", `{"status":"True"}`)
}
