package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cache := NewArticleCache(dir)
	assert.False(t, cache.IsSeen("https://example.com/a"))

	cache.Add([]string{"https://example.com/a", "https://example.com/b"})
	assert.True(t, cache.IsSeen("https://example.com/a"))
	assert.True(t, cache.IsSeen("https://example.com/b"))

	//a fresh cache over the same directory reloads from disk
	reloaded := NewArticleCache(dir)
	assert.True(t, reloaded.IsSeen("https://example.com/a"))
	assert.False(t, reloaded.IsSeen("https://example.com/c"))
}

func TestArticleCacheAddIsIdempotent(t *testing.T) {
	cache := NewArticleCache(t.TempDir())

	cache.Add([]string{"https://example.com/a"})
	cache.Add([]string{"https://example.com/a"})

	assert.True(t, cache.IsSeen("https://example.com/a"))
}
