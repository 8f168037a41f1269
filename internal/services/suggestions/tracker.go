package suggestions

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/noovas/games-catalog-api/internal/models"
)

// Popularity thresholds. A term needs at least MinPopularCount hits to rank;
// terms at or above PruneExemptCount never age out, so a seasonal spike keeps
// its place in the ranking instead of vanishing and reappearing.
const (
	DefaultPopularLimit = 20
	MinPopularCount     = 2
	PruneExemptCount    = 5
)

// Tracker records distinct search terms with their observed result counts and
// derives a bounded ranked popular view. The term table is guarded by a
// mutex so concurrent identical searches never lose increments; the popular
// view is recomputed lazily on read.
type Tracker struct {
	mu           sync.Mutex
	terms        map[string]*models.SearchTerm
	popular      []models.SearchTerm
	dirty        bool
	popularLimit int
	repo         TermRepository // may be nil
}

// TrackerOption is a functional option for configuring the tracker
type TrackerOption func(*Tracker)

// WithPopularLimit bounds the retained popular working set
func WithPopularLimit(limit int) TrackerOption {
	return func(t *Tracker) {
		if limit > 0 {
			t.popularLimit = limit
		}
	}
}

// NewTracker creates a tracker, loading previously persisted stats when a
// repository is provided.
func NewTracker(repo TermRepository, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		terms:        make(map[string]*models.SearchTerm),
		dirty:        true,
		popularLimit: DefaultPopularLimit,
		repo:         repo,
	}

	for _, opt := range opts {
		opt(t)
	}

	if repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		stats, err := repo.LoadAll(ctx)
		if err != nil {
			log.Printf("[WARN] Failed to load search term stats: %v", err)
		} else {
			for i := range stats {
				stat := stats[i]
				t.terms[stat.Term] = &stat
			}
		}
	}

	return t
}

// Track upserts the stat row for term. Empty terms are a no-op. The
// read-modify-write on a term's counters happens under the lock, so
// concurrent identical searches cannot lose updates.
func (t *Tracker) Track(term string, resultCount int) {
	key := normalizeTerm(term)
	if key == "" {
		return
	}
	if resultCount < 0 {
		resultCount = 0
	}

	now := time.Now().UTC()

	t.mu.Lock()
	stat, exists := t.terms[key]
	if !exists {
		stat = &models.SearchTerm{
			Term:         key,
			Count:        1,
			TotalResults: resultCount,
			FirstSeen:    now,
			LastSeen:     now,
		}
		t.terms[key] = stat
	} else {
		stat.Count++
		stat.TotalResults += resultCount
		stat.LastSeen = now
	}
	snapshot := *stat
	t.dirty = true
	t.mu.Unlock()

	if t.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := t.repo.Upsert(ctx, &snapshot); err != nil {
			log.Printf("[WARN] Failed to persist search term %q: %v", key, err)
		}
	}
}

// Popular returns up to limit entries of the ranked popular view. Only terms
// searched at least MinPopularCount times qualify; the retained working set
// is bounded by the tracker's popular limit regardless of traffic volume.
func (t *Tracker) Popular(limit int) []models.SearchTerm {
	t.mu.Lock()
	if t.dirty {
		t.recomputePopular()
		t.dirty = false
	}
	view := t.popular
	if limit > 0 && limit < len(view) {
		view = view[:limit]
	}
	out := append([]models.SearchTerm(nil), view...)
	t.mu.Unlock()
	return out
}

// PopularTerms returns just the terms of the popular view, in rank order
func (t *Tracker) PopularTerms(limit int) []string {
	stats := t.Popular(limit)
	terms := make([]string, len(stats))
	for i, stat := range stats {
		terms[i] = stat.Term
	}
	return terms
}

// Len returns the number of tracked terms
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.terms)
}

// Prune deletes terms not seen within maxAge whose count is below
// PruneExemptCount, returning how many were removed. Highly popular terms are
// exempt from age-based pruning even when stale.
func (t *Tracker) Prune(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)

	t.mu.Lock()
	removed := 0
	for key, stat := range t.terms {
		if stat.LastSeen.Before(cutoff) && stat.Count < PruneExemptCount {
			delete(t.terms, key)
			removed++
		}
	}
	if removed > 0 {
		t.dirty = true
	}
	t.mu.Unlock()

	if t.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := t.repo.DeleteStale(ctx, cutoff, PruneExemptCount); err != nil {
			log.Printf("[WARN] Failed to prune persisted search terms: %v", err)
		}
	}

	return removed
}

// recomputePopular rebuilds the bounded ranked view. Caller must hold the lock.
func (t *Tracker) recomputePopular() {
	candidates := make([]models.SearchTerm, 0, len(t.terms))
	for _, stat := range t.terms {
		if stat.Count >= MinPopularCount {
			candidates = append(candidates, *stat)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Term < candidates[j].Term
	})

	if len(candidates) > t.popularLimit {
		candidates = candidates[:t.popularLimit]
	}
	t.popular = candidates
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
