package types

import (
	"github.com/noovas/games-catalog-api/internal/database"
	"github.com/noovas/games-catalog-api/internal/services/cache"
	"github.com/noovas/games-catalog-api/internal/services/catalog"
	"github.com/noovas/games-catalog-api/internal/services/search"
	"github.com/noovas/games-catalog-api/internal/services/suggestions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	SearchService     *search.Service
	SuggestionService *suggestions.Service
	Catalog           catalog.Repository
	Store             cache.Store
}
