package types

import (
	"github.com/noovas/games-catalog-api/internal/models"
	"github.com/noovas/games-catalog-api/internal/services/search"
	"github.com/noovas/games-catalog-api/internal/services/suggestions"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse for error cases
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SearchResponse wraps one page of search results
type SearchResponse struct {
	BaseResponse
	search.Result
	Query string `json:"query,omitempty"`
}

// SuggestionsResponse for the typeahead endpoint
type SuggestionsResponse struct {
	BaseResponse
	Suggestions []suggestions.Suggestion `json:"suggestions"`
	Query       string                   `json:"query"`
	Count       int                      `json:"count"`
}

// PopularTermsResponse for the popular searches endpoint
type PopularTermsResponse struct {
	BaseResponse
	Terms []suggestions.PopularTerm `json:"terms"`
	Count int                       `json:"count"`
}

// GenresResponse for the genre listing endpoint
type GenresResponse struct {
	BaseResponse
	Genres []models.Genre `json:"genres"`
	Count  int            `json:"count"`
}

// GameResponse for the single game endpoint
type GameResponse struct {
	BaseResponse
	Game *models.Game `json:"game"`
}
