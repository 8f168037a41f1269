package catalog

import (
	"context"

	"github.com/noovas/games-catalog-api/internal/models"
)

// GameRef is the projection of a game the search engine works with
type GameRef struct {
	ID          int
	DisplayName string
	ReleaseDate string // YYYY-MM-DD, empty when unknown
}

// Repository defines the catalog data access the search and suggestion
// services need. It intentionally stays coarse: free-text match, genre-set
// membership and release-status filtering. Fine filtering is done by the
// search engine.
type Repository interface {
	// Candidate lookups
	FindByText(ctx context.Context, term string) ([]int, error)
	FindByGenres(ctx context.Context, genreIDs []int) ([]int, error)
	FindByStatus(ctx context.Context, released bool) ([]int, error)
	FindFeatured(ctx context.Context) ([]int, error)
	AllIDs(ctx context.Context) ([]int, error)

	// Projections for sorting and display
	Refs(ctx context.Context, ids []int) (map[int]GameRef, error)

	// Catalog surface
	GetGameByID(ctx context.Context, id int) (*models.Game, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GameNames(ctx context.Context, match string, limit int) ([]string, error)
	GenreNames(ctx context.Context) ([]string, error)
}
