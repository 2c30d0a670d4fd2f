package backend

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/gridkit/internal/dataset"
	"github.com/atomicstack/gridkit/internal/tray"
)

type countingProvider struct {
	calls atomic.Int32
	err   error
}

func (p *countingProvider) Customers() ([]dataset.Customer, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return []dataset.Customer{{ID: "1"}}, nil
}

func (p *countingProvider) Trays() ([]tray.Tray, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return []tray.Tray{{ID: "t1"}}, nil
}

func TestWatcherEmitsBothKinds(t *testing.T) {
	w := NewWatcher(&countingProvider{}, time.Hour)
	seen := map[Kind]bool{}
	timeout := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case evt := <-w.Events():
			if evt.Err != nil {
				t.Fatalf("unexpected error: %v", evt.Err)
			}
			switch evt.Kind {
			case KindCustomers:
				if rows, ok := evt.Data.([]dataset.Customer); !ok || len(rows) != 1 {
					t.Fatalf("expected customer rows, got %#v", evt.Data)
				}
			case KindTrays:
				if trays, ok := evt.Data.([]tray.Tray); !ok || len(trays) != 1 {
					t.Fatalf("expected trays, got %#v", evt.Data)
				}
			}
			seen[evt.Kind] = true
		case <-timeout:
			t.Fatalf("timed out waiting for events, saw %v", seen)
		}
	}
	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatal("expected events channel closed after Wait")
	}
}

func TestWatcherForwardsErrors(t *testing.T) {
	w := NewWatcher(&countingProvider{err: errors.New("boom")}, time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()
	select {
	case evt := <-w.Events():
		if evt.Err == nil || evt.Err.Error() != "boom" {
			t.Fatalf("expected provider error, got %v", evt.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error event")
	}
}

func TestWatcherStopsPolling(t *testing.T) {
	p := &countingProvider{}
	w := NewWatcher(p, 10*time.Millisecond)
	w.Stop()
	go func() {
		for range w.Events() {
		}
	}()
	w.Wait()
	after := p.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := p.calls.Load(); got != after {
		t.Fatalf("expected no polls after stop, got %d then %d", after, got)
	}
}

func TestWatcherSinglePoll(t *testing.T) {
	p := &countingProvider{}
	w := NewWatcher(p, 0)
	count := 0
	for range w.Events() {
		count++
	}
	if count != 2 || p.calls.Load() != 2 {
		t.Fatalf("expected one poll per kind, got %d events from %d calls", count, p.calls.Load())
	}
}

func TestKindString(t *testing.T) {
	if KindCustomers.String() != "customers" || KindTrays.String() != "trays" || Kind(9).String() != "unknown" {
		t.Fatal("unexpected kind names")
	}
}
