package suggestions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noovas/games-catalog-api/internal/database"
	"github.com/noovas/games-catalog-api/internal/models"
)

func setupTermRepo(t *testing.T) *GormTermRepository {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	return NewTermRepository(db.DB)
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	repo := setupTermRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	first := &models.SearchTerm{Term: "zelda", Count: 1, TotalResults: 10, FirstSeen: now, LastSeen: now}
	require.NoError(t, repo.Upsert(ctx, first))

	later := now.Add(time.Hour)
	second := &models.SearchTerm{Term: "zelda", Count: 2, TotalResults: 25, FirstSeen: now, LastSeen: later}
	require.NoError(t, repo.Upsert(ctx, second))

	terms, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "zelda", terms[0].Term)
	assert.Equal(t, 2, terms[0].Count)
	assert.Equal(t, 25, terms[0].TotalResults)
	assert.WithinDuration(t, later, terms[0].LastSeen, time.Second)
}

func TestLoadAllEmpty(t *testing.T) {
	repo := setupTermRepo(t)

	terms, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestDeleteStale(t *testing.T) {
	repo := setupTermRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)

	rows := []*models.SearchTerm{
		{Term: "stale", Count: 1, FirstSeen: old, LastSeen: old},
		{Term: "stale-but-popular", Count: 9, FirstSeen: old, LastSeen: old},
		{Term: "fresh", Count: 1, FirstSeen: now, LastSeen: now},
	}
	for _, row := range rows {
		require.NoError(t, repo.Upsert(ctx, row))
	}

	deleted, err := repo.DeleteStale(ctx, now.Add(-24*time.Hour), PruneExemptCount)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	terms, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 2)

	remaining := []string{terms[0].Term, terms[1].Term}
	assert.ElementsMatch(t, []string{"stale-but-popular", "fresh"}, remaining)
}

func TestDeletedTermCanBeReinserted(t *testing.T) {
	repo := setupTermRepo(t)
	ctx := context.Background()
	old := time.Now().UTC().Add(-48 * time.Hour)

	require.NoError(t, repo.Upsert(ctx, &models.SearchTerm{Term: "zelda", Count: 1, FirstSeen: old, LastSeen: old}))

	_, err := repo.DeleteStale(ctx, time.Now().UTC(), PruneExemptCount)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, &models.SearchTerm{Term: "zelda", Count: 1, FirstSeen: now, LastSeen: now}))

	terms, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, 1, terms[0].Count)
}

func TestTrackerPersistsAcrossRestarts(t *testing.T) {
	repo := setupTermRepo(t)

	first := NewTracker(repo)
	first.Track("zelda", 10)
	first.Track("zelda", 5)
	first.Track("mario", 3)

	// A fresh tracker sharing the repository sees the persisted stats
	second := NewTracker(repo)
	assert.Equal(t, 2, second.Len())

	popular := second.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, "zelda", popular[0].Term)
	assert.Equal(t, 2, popular[0].Count)
	assert.Equal(t, 15, popular[0].TotalResults)
}
