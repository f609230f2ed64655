package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// RefreshResult is the outcome of refreshing one location.
type RefreshResult struct {
	Location  string
	Weeks     int
	StartedAt time.Time
	EndedAt   time.Time
	Err       error
}

// Refresher fetches, parses and publishes a set of locations, once or
// on an interval.
type Refresher struct {
	menu      driving.MenuService
	locations []string
	interval  time.Duration
	onResult  func(RefreshResult)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

// NewRefresher creates a refresher for locations. The interval is only
// used by Start.
func NewRefresher(menu driving.MenuService, locations []string, interval time.Duration) *Refresher {
	return &Refresher{
		menu:      menu,
		locations: locations,
		interval:  interval,
	}
}

// OnResult registers a callback invoked after each location.
func (r *Refresher) OnResult(fn func(RefreshResult)) {
	r.onResult = fn
}

// RunOnce refreshes every location in order. A failing location does
// not stop the others.
func (r *Refresher) RunOnce(ctx context.Context) []RefreshResult {
	results := make([]RefreshResult, 0, len(r.locations))
	for _, location := range r.locations {
		if ctx.Err() != nil {
			break
		}
		res := r.refresh(ctx, location)
		if res.Err != nil {
			logger.Warn("Refreshing %s failed: %v", location, res.Err)
		}
		if r.onResult != nil {
			r.onResult(res)
		}
		results = append(results, res)
	}
	return results
}

// Start refreshes immediately and then on every interval tick. It blocks
// until Stop is called or ctx is done.
func (r *Refresher) Start(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})
	stopCh, done := r.stopCh, r.done
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		close(done)
	}()

	r.RunOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			logger.Debug("Refreshing %d locations", len(r.locations))
			r.RunOnce(ctx)
		}
	}
}

// Stop ends a running Start and waits for it to return.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	done := r.done
	r.mu.Unlock()

	<-done
}

func (r *Refresher) refresh(ctx context.Context, location string) RefreshResult {
	res := RefreshResult{Location: location, StartedAt: time.Now()}
	res.Weeks, res.Err = r.publish(ctx, location)
	res.EndedAt = time.Now()
	return res
}

func (r *Refresher) publish(ctx context.Context, location string) (int, error) {
	raw, err := r.menu.Fetch(ctx, location)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	result, err := r.menu.Parse(ctx, raw)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}
	if err := r.menu.Publish(ctx, result); err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}
	return len(result.Weeks), nil
}
