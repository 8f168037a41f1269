package cleanup

import (
	"context"
	"log"
	"time"
)

// Pruner removes stale entries and reports how many were dropped
type Pruner interface {
	Prune(maxAge time.Duration) int
}

// Service periodically prunes stale search term stats. The durable result
// cache needs no equivalent sweep since its entries self-expire via TTL.
type Service struct {
	pruner   Pruner
	maxAge   time.Duration
	interval time.Duration
	cancel   context.CancelFunc
}

// NewService creates a new cleanup service
func NewService(pruner Pruner, maxAge, interval time.Duration) *Service {
	return &Service{
		pruner:   pruner,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Start begins the cleanup service
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Run initial cleanup
	s.prune()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.prune()
			case <-ctx.Done():
				log.Println("[INFO] Cleanup service stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Cleanup service started (interval: %v, max age: %v)", s.interval, s.maxAge)
}

// Stop stops the cleanup service
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Service) prune() {
	if removed := s.pruner.Prune(s.maxAge); removed > 0 {
		log.Printf("[INFO] Pruned %d stale search terms", removed)
	}
}
