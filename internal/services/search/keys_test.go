package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyStable(t *testing.T) {
	a := ParseCriteria(map[string]any{"query": "zelda", "genres": []int{5, 12}})
	b := ParseCriteria(map[string]any{"query": "zelda", "genres": []int{5, 12}})

	assert.Equal(t, CacheKey(a), CacheKey(b))
	assert.True(t, strings.HasPrefix(CacheKey(a), "search:"))
}

func TestCacheKeyGenreOrderIndependent(t *testing.T) {
	a := ParseCriteria(map[string]any{"genres": []int{12, 5}})
	b := ParseCriteria(map[string]any{"genres": []int{5, 12}})

	assert.Equal(t, CacheKey(a), CacheKey(b))
}

func TestCacheKeyQueryCaseInsensitive(t *testing.T) {
	a := ParseCriteria(map[string]any{"query": "Zelda"})
	b := ParseCriteria(map[string]any{"query": "zelda"})

	assert.Equal(t, CacheKey(a), CacheKey(b))
}

func TestCacheKeyDistinguishesCriteria(t *testing.T) {
	base := ParseCriteria(map[string]any{"query": "zelda"})

	variants := []map[string]any{
		{"query": "mario"},
		{"query": "zelda", "genres": []int{5}},
		{"query": "zelda", "status": "released"},
		{"query": "zelda", "sort": "name_asc"},
		{"query": "zelda", "page": 2},
		{"query": "zelda", "per_page": 24},
	}

	for _, raw := range variants {
		assert.NotEqual(t, CacheKey(base), CacheKey(ParseCriteria(raw)), "raw: %v", raw)
	}
}
