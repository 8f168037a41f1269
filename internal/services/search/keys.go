package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// CacheKey derives a stable cache key from normalized criteria. Fields are
// serialized in a fixed order with enums by name, so two semantically equal
// criteria values (for example genre IDs submitted in different order) always
// hash identically.
func CacheKey(c Criteria) string {
	genres := make([]string, len(c.GenreIDs))
	for i, id := range c.GenreIDs {
		genres[i] = strconv.Itoa(id)
	}

	canonical := fmt.Sprintf("q=%s|g=%s|st=%s|qf=%s|sort=%s|page=%d|pp=%d",
		strings.ToLower(c.Query),
		strings.Join(genres, ","),
		c.Status,
		c.Quick,
		c.Sort,
		c.Page,
		c.PerPage,
	)

	sum := sha256.Sum256([]byte(canonical))
	return "search:" + hex.EncodeToString(sum[:])
}
