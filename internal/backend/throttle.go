package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces provider reads so that a short poll interval cannot turn into
// a tight loop of file reads.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	if gap < 0 {
		gap = 0
	}
	return &throttle{gap: gap}
}

// wait blocks until gap has passed since the previous call returned. It reports
// false when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.gap == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if delay := t.gap - time.Since(t.last); delay > 0 && !t.last.IsZero() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.last = time.Now()
	return true
}
