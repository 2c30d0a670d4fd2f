// Package backend polls the data provider in the background so pages pick up
// edits to the dataset while the program runs.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/gridkit/internal/dataset"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCustomers Kind = iota
	KindTrays
)

func (k Kind) String() string {
	switch k {
	case KindCustomers:
		return "customers"
	case KindTrays:
		return "trays"
	}
	return "unknown"
}

// Event conveys freshly loaded data or an error from a provider poll. Data holds
// []dataset.Customer for KindCustomers and []tray.Tray for KindTrays.
type Event struct {
	Kind Kind
	Data any
	Err  error
}

// Watcher polls a provider at a fixed interval and publishes events.
type Watcher struct {
	provider dataset.Provider
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls provider every interval. The first
// poll happens immediately; a non-positive interval polls exactly once.
func NewWatcher(provider dataset.Provider, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		provider: provider,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startCustomerPoller()
	w.startTrayPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once every poller has
// exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startCustomerPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindCustomers, func() (any, error) {
		if !throttle.wait(w.ctx) {
			return nil, w.ctx.Err()
		}
		return w.provider.Customers()
	})
}

func (w *Watcher) startTrayPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindTrays, func() (any, error) {
		if !throttle.wait(w.ctx) {
			return nil, w.ctx.Err()
		}
		return w.provider.Trays()
	})
}

func (w *Watcher) poll(kind Kind, fetch func() (any, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch()
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
