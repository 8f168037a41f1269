package suggestions

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noovas/games-catalog-api/internal/models"
)

// GormTermRepository persists search term stats in the catalog database
type GormTermRepository struct {
	db *gorm.DB
}

// Ensure GormTermRepository implements TermRepository interface
var _ TermRepository = (*GormTermRepository)(nil)

func NewTermRepository(db *gorm.DB) *GormTermRepository {
	return &GormTermRepository{db: db}
}

// Upsert writes the full stat row, replacing counters on term conflict. The
// tracker serializes writes per term, so last-write-wins is safe here.
func (r *GormTermRepository) Upsert(ctx context.Context, term *models.SearchTerm) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "term"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"count", "total_results", "last_seen", "updated_at",
			}),
		}).
		Create(term).Error; err != nil {
		return fmt.Errorf("upserting search term: %w", err)
	}
	return nil
}

// LoadAll returns every persisted stat row
func (r *GormTermRepository) LoadAll(ctx context.Context) ([]models.SearchTerm, error) {
	var terms []models.SearchTerm
	if err := r.db.WithContext(ctx).Find(&terms).Error; err != nil {
		return nil, fmt.Errorf("loading search terms: %w", err)
	}
	return terms, nil
}

// DeleteStale removes rows last seen before the cutoff with count below
// maxCount, returning how many were deleted. Deletes are hard so a pruned
// term can be re-inserted without colliding with its old unique index row.
func (r *GormTermRepository) DeleteStale(ctx context.Context, before time.Time, maxCount int) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("last_seen < ? AND count < ?", before, maxCount).
		Delete(&models.SearchTerm{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting stale search terms: %w", result.Error)
	}
	return result.RowsAffected, nil
}
