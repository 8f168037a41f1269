package suggestions

import (
	"context"
	"time"

	"github.com/noovas/games-catalog-api/internal/models"
)

// TermRepository persists search term stats so popularity survives restarts
type TermRepository interface {
	Upsert(ctx context.Context, term *models.SearchTerm) error
	LoadAll(ctx context.Context) ([]models.SearchTerm, error)
	DeleteStale(ctx context.Context, before time.Time, maxCount int) (int64, error)
}

// CatalogSource is the slice of the catalog suggestions draw names from
type CatalogSource interface {
	GameNames(ctx context.Context, match string, limit int) ([]string, error)
	GenreNames(ctx context.Context) ([]string, error)
}

// Suggestion is one term offered to the user while typing
type Suggestion struct {
	Term   string `json:"term"`
	Source string `json:"source"` // popular, game, genre or category
}

// PopularTerm is one entry of the ranked popular-terms view
type PopularTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	Label string `json:"label"`
}
