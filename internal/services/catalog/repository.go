package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/noovas/games-catalog-api/internal/models"
)

// GormRepository implements Repository on the sqlite catalog store
type GormRepository struct {
	db *gorm.DB
}

// Ensure GormRepository implements Repository interface
var _ Repository = (*GormRepository)(nil)

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindByText returns IDs of games whose name or description matches the term.
// Matching here is deliberately broader than the engine's name-contains rule;
// the engine narrows the set afterwards.
func (r *GormRepository) FindByText(ctx context.Context, term string) ([]int, error) {
	var ids []int
	pattern := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Order("name ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding games by text: %w", err)
	}
	return ids, nil
}

// FindByGenres returns IDs of games belonging to any of the given genres
func (r *GormRepository) FindByGenres(ctx context.Context, genreIDs []int) ([]int, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Distinct("games.id").
		Joins("JOIN game_genres ON game_genres.game_id = games.id").
		Where("game_genres.genre_id IN ?", genreIDs).
		Order("games.id ASC").
		Pluck("games.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding games by genres: %w", err)
	}
	return ids, nil
}

// FindByStatus returns IDs of released or upcoming games
func (r *GormRepository) FindByStatus(ctx context.Context, released bool) ([]int, error) {
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("released = ?", released).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding games by status: %w", err)
	}
	return ids, nil
}

// FindFeatured returns IDs of games flagged as featured
func (r *GormRepository) FindFeatured(ctx context.Context) ([]int, error) {
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("featured = ?", true).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding featured games: %w", err)
	}
	return ids, nil
}

// AllIDs returns every game ID, newest first. This is the candidate set for
// an unfiltered search, so the default relevance order is recency.
func (r *GormRepository) AllIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Order("created_at DESC, id DESC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("listing game ids: %w", err)
	}
	return ids, nil
}

// Refs returns the sort/display projection for the given IDs
func (r *GormRepository) Refs(ctx context.Context, ids []int) (map[int]GameRef, error) {
	refs := make(map[int]GameRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var rows []struct {
		ID          int
		Name        string
		ReleaseDate string
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select("id", "name", "release_date").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading game refs: %w", err)
	}

	for _, row := range rows {
		refs[row.ID] = GameRef{
			ID:          row.ID,
			DisplayName: row.Name,
			ReleaseDate: row.ReleaseDate,
		}
	}
	return refs, nil
}

// GetGameByID returns a single game with its genres
func (r *GormRepository) GetGameByID(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("game", id)
		}
		return nil, fmt.Errorf("getting game: %w", err)
	}
	return &game, nil
}

// ListGenres returns all genres ordered by name
func (r *GormRepository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}
	return genres, nil
}

// GameNames returns up to limit game names containing match (case-insensitive)
func (r *GormRepository) GameNames(ctx context.Context, match string, limit int) ([]string, error) {
	var names []string
	q := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Order("name ASC")
	if match != "" {
		q = q.Where("name LIKE ?", "%"+match+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("listing game names: %w", err)
	}
	return names, nil
}

// GenreNames returns all genre names ordered by name
func (r *GormRepository) GenreNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Genre{}).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("listing genre names: %w", err)
	}
	return names, nil
}
