package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPruner records Prune calls and the requested max age
type countingPruner struct {
	mu     sync.Mutex
	calls  int
	maxAge time.Duration
}

func (p *countingPruner) Prune(maxAge time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.maxAge = maxAge
	return 1
}

func (p *countingPruner) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestCleanupRunsImmediatelyOnStart(t *testing.T) {
	pruner := &countingPruner{}
	svc := NewService(pruner, 24*time.Hour, time.Hour)

	svc.Start(context.Background())
	defer svc.Stop()

	assert.Equal(t, 1, pruner.callCount())

	pruner.mu.Lock()
	maxAge := pruner.maxAge
	pruner.mu.Unlock()
	assert.Equal(t, 24*time.Hour, maxAge)
}

func TestCleanupRunsPeriodically(t *testing.T) {
	pruner := &countingPruner{}
	svc := NewService(pruner, time.Hour, 10*time.Millisecond)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return pruner.callCount() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestCleanupStops(t *testing.T) {
	pruner := &countingPruner{}
	svc := NewService(pruner, time.Hour, 10*time.Millisecond)

	svc.Start(context.Background())
	svc.Stop()

	time.Sleep(30 * time.Millisecond)
	calls := pruner.callCount()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pruner.callCount(), "no prunes should run after Stop")
}
