package suggestions

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// DefaultSuggestionLimit bounds a suggestion response when no limit is given
const DefaultSuggestionLimit = 10

// defaultCategories seeds suggestions on a cold start so the typeahead is
// never empty before any searches have been tracked.
var defaultCategories = []string{
	"action",
	"adventure",
	"indie",
	"multiplayer",
	"platformer",
	"puzzle",
	"rpg",
	"strategy",
}

// Service blends popular search terms, game names and genre names into
// ranked typeahead suggestions.
type Service struct {
	tracker *Tracker
	catalog CatalogSource
}

// NewService creates a new suggestion service
func NewService(tracker *Tracker, catalog CatalogSource) *Service {
	return &Service{
		tracker: tracker,
		catalog: catalog,
	}
}

// SuggestionsFor returns up to limit suggestions matching partial,
// case-insensitively. Sources are merged in priority order: popular terms
// first, then game names, then genre names, each in its source's own order.
// Catalog failures just shrink the blend; they are never surfaced.
func (s *Service) SuggestionsFor(ctx context.Context, partial string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	needle := strings.ToLower(strings.TrimSpace(partial))

	out := make([]Suggestion, 0, limit)
	seen := make(map[string]bool)

	add := func(term, source string) bool {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" || seen[key] {
			return len(out) < limit
		}
		if needle != "" && !strings.Contains(key, needle) {
			return len(out) < limit
		}
		seen[key] = true
		out = append(out, Suggestion{Term: term, Source: source})
		return len(out) < limit
	}

	for _, term := range s.tracker.PopularTerms(0) {
		if !add(term, "popular") {
			return out
		}
	}

	// Cold start: no tracked terms yet, blend in the built-in categories
	if s.tracker.Len() == 0 {
		for _, category := range defaultCategories {
			if !add(category, "category") {
				return out
			}
		}
	}

	if s.catalog != nil {
		names, err := s.catalog.GameNames(ctx, needle, limit)
		if err != nil {
			log.Printf("[WARN] Failed to load game names for suggestions: %v", err)
		}
		for _, name := range names {
			if !add(name, "game") {
				return out
			}
		}

		genres, err := s.catalog.GenreNames(ctx)
		if err != nil {
			log.Printf("[WARN] Failed to load genre names for suggestions: %v", err)
		}
		for _, name := range genres {
			if !add(name, "genre") {
				return out
			}
		}
	}

	return out
}

// Popular returns the ranked popular-terms view with display labels
func (s *Service) Popular(limit int) []PopularTerm {
	stats := s.tracker.Popular(limit)
	out := make([]PopularTerm, len(stats))
	for i, stat := range stats {
		out[i] = PopularTerm{
			Term:  stat.Term,
			Count: stat.Count,
			Label: fmt.Sprintf("%s (%d searches)", stat.Term, stat.Count),
		}
	}
	return out
}

// Tracker exposes the underlying tracker for wiring into the search facade
func (s *Service) Tracker() *Tracker {
	return s.tracker
}
