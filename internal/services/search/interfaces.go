package search

import (
	"context"

	"github.com/noovas/games-catalog-api/internal/services/catalog"
)

// Gateway is the slice of the catalog the search facade depends on
type Gateway interface {
	FindByText(ctx context.Context, term string) ([]int, error)
	FindByGenres(ctx context.Context, genreIDs []int) ([]int, error)
	FindByStatus(ctx context.Context, released bool) ([]int, error)
	FindFeatured(ctx context.Context) ([]int, error)
	AllIDs(ctx context.Context) ([]int, error)
	Refs(ctx context.Context, ids []int) (map[int]catalog.GameRef, error)
}

// Tracker records search terms for the suggestion/popularity pipeline.
// Tracking is best-effort: the facade swallows anything that goes wrong here.
type Tracker interface {
	Track(term string, resultCount int)
}
