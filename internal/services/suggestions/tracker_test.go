package suggestions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackNormalizesTerms(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("  Zelda  ", 10)
	tracker.Track("zelda", 5)
	tracker.Track("ZELDA", 3)

	popular := tracker.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, "zelda", popular[0].Term)
	assert.Equal(t, 3, popular[0].Count)
	assert.Equal(t, 18, popular[0].TotalResults)
}

func TestTrackIgnoresEmptyTerms(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("", 10)
	tracker.Track("   ", 10)

	assert.Equal(t, 0, tracker.Len())
}

func TestTrackClampsNegativeResultCounts(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("zelda", -5)
	tracker.Track("zelda", 3)

	popular := tracker.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, 3, popular[0].TotalResults)
}

func TestPopularThreshold(t *testing.T) {
	tracker := NewTracker(nil)

	// A single search is not popularity
	tracker.Track("once", 1)
	assert.Empty(t, tracker.Popular(0))

	tracker.Track("twice", 1)
	tracker.Track("twice", 1)

	popular := tracker.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, "twice", popular[0].Term)
}

func TestPopularRanking(t *testing.T) {
	tracker := NewTracker(nil)

	track := func(term string, times int) {
		for i := 0; i < times; i++ {
			tracker.Track(term, 1)
		}
	}
	track("mario", 3)
	track("zelda", 5)
	track("tetris", 3)
	track("rare", 1)

	// Count descending, ties alphabetical
	assert.Equal(t, []string{"zelda", "mario", "tetris"}, tracker.PopularTerms(0))
}

func TestPopularLimits(t *testing.T) {
	tracker := NewTracker(nil, WithPopularLimit(2))

	for _, term := range []string{"a", "b", "c", "d"} {
		tracker.Track(term, 1)
		tracker.Track(term, 1)
	}

	// The retained view is bounded by the tracker's limit
	assert.Len(t, tracker.Popular(0), 2)
	// And a request limit can narrow it further
	assert.Len(t, tracker.Popular(1), 1)
}

func TestPopularReflectsNewTracks(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("zelda", 1)
	tracker.Track("zelda", 1)
	require.Equal(t, 2, tracker.Popular(0)[0].Count)

	// The lazily recomputed view picks up later tracks
	tracker.Track("zelda", 1)
	assert.Equal(t, 3, tracker.Popular(0)[0].Count)
}

func TestPruneRemovesStaleTerms(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("stale", 1)
	time.Sleep(5 * time.Millisecond)

	// Everything older than "now" goes
	removed := tracker.Prune(0)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, tracker.Len())
}

func TestPruneExemptsPopularTerms(t *testing.T) {
	tracker := NewTracker(nil)

	for i := 0; i < PruneExemptCount; i++ {
		tracker.Track("evergreen", 1)
	}
	tracker.Track("fading", 1)
	time.Sleep(5 * time.Millisecond)

	removed := tracker.Prune(0)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"evergreen"}, tracker.PopularTerms(0))
}

func TestPruneKeepsRecentTerms(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("fresh", 1)

	removed := tracker.Prune(24 * time.Hour)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, tracker.Len())
}

func TestTrackConcurrent(t *testing.T) {
	tracker := NewTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Track("zelda", 2)
		}()
	}
	wg.Wait()

	popular := tracker.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, 50, popular[0].Count)
	assert.Equal(t, 100, popular[0].TotalResults)
}

func TestPopularReturnsCopies(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.Track("zelda", 1)
	tracker.Track("zelda", 1)

	view := tracker.Popular(0)
	view[0].Count = 999

	assert.Equal(t, 2, tracker.Popular(0)[0].Count)
}
