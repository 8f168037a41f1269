package search

import (
	"context"
	"log"
	"time"
)

// DefaultTimeout bounds the gateway and durable-cache round trips of one search
const DefaultTimeout = 5 * time.Second

// Service is the search facade. It is the only entry point external callers
// use: validate, consult the cache, on a miss run the coarse gateway lookup
// and the fine filter/sort/paginate pass, store, then fire tracking once per
// logical search.
type Service struct {
	gateway Gateway
	cache   *ResultCache
	tracker Tracker
	timeout time.Duration
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithTimeout sets the per-search timeout for gateway and cache calls
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// NewService creates a new search facade
func NewService(gateway Gateway, resultCache *ResultCache, tracker Tracker, opts ...ServiceOption) *Service {
	s := &Service{
		gateway: gateway,
		cache:   resultCache,
		tracker: tracker,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search resolves a raw request into a result page. It never returns an
// error: malformed input is coerced, and gateway or cache failures degrade to
// an empty result set.
func (s *Service) Search(ctx context.Context, raw map[string]any) Result {
	return s.SearchCriteria(ctx, ParseCriteria(raw))
}

// SearchCriteria is Search for callers that already hold normalized criteria
func (s *Service) SearchCriteria(ctx context.Context, c Criteria) Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.cache.GetOrCompute(ctx, CacheKey(c), func() (Result, error) {
		return s.compute(ctx, c)
	})
	if err != nil {
		// Worst case is an empty page, never a failed search
		log.Printf("[WARN] Search degraded to empty result: %v", err)
		result = paginate(c, nil)
	}

	s.trackAsync(c, result)
	return result
}

// ClearCache drops the process-local result tier
func (s *Service) ClearCache() {
	s.cache.Clear()
}

// compute runs the coarse gateway lookups, intersects them into a candidate
// set and hands the set to the engine for fine filtering and ordering.
func (s *Service) compute(ctx context.Context, c Criteria) (Result, error) {
	candidates, err := s.candidates(ctx, c)
	if err != nil {
		return Result{}, err
	}
	if len(candidates) == 0 {
		return paginate(c, nil), nil
	}

	refs, err := s.gateway.Refs(ctx, candidates)
	if err != nil {
		return Result{}, err
	}

	return Execute(c, candidates, refs), nil
}

// candidates intersects the coarse per-filter ID sets. The first set's order
// is preserved through the intersection; for text searches that makes the
// gateway's text-match order the relevance order.
func (s *Service) candidates(ctx context.Context, c Criteria) ([]int, error) {
	if !c.HasFilters() {
		return s.gateway.AllIDs(ctx)
	}

	var result []int
	have := false

	narrow := func(fetch func() ([]int, error)) error {
		ids, err := fetch()
		if err != nil {
			return err
		}
		if !have {
			result = ids
			have = true
			return nil
		}
		result = intersect(result, ids)
		return nil
	}

	if c.Query != "" {
		if err := narrow(func() ([]int, error) { return s.gateway.FindByText(ctx, c.Query) }); err != nil {
			return nil, err
		}
	}
	if len(c.GenreIDs) > 0 {
		if err := narrow(func() ([]int, error) { return s.gateway.FindByGenres(ctx, c.GenreIDs) }); err != nil {
			return nil, err
		}
	}
	if c.Status != StatusAny {
		released := c.Status == StatusReleased
		if err := narrow(func() ([]int, error) { return s.gateway.FindByStatus(ctx, released) }); err != nil {
			return nil, err
		}
	}
	if c.Quick == QuickFeatured {
		if err := narrow(func() ([]int, error) { return s.gateway.FindFeatured(ctx) }); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// intersect keeps base's order, dropping IDs absent from with
func intersect(base, with []int) []int {
	lookup := make(map[int]bool, len(with))
	for _, id := range with {
		lookup[id] = true
	}
	out := make([]int, 0, len(base))
	for _, id := range base {
		if lookup[id] {
			out = append(out, id)
		}
	}
	return out
}

// trackAsync fires tracking off the response path. Tracking is a side
// channel: panics are recovered and nothing here affects the returned result.
func (s *Service) trackAsync(c Criteria, result Result) {
	if s.tracker == nil || c.Query == "" {
		return
	}

	go func(term string, total int) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Panic while tracking search term %q: %v", term, r)
			}
		}()
		s.tracker.Track(term, total)
	}(c.Query, result.Total)
}
