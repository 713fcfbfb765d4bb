// Package poll implements the retry-until-success loader used for remote
// listings. A Session keeps fetching one resource at a fixed interval until
// a non-empty snapshot arrives, then cancels its own timer. Failures and
// empty results are not surfaced; the only symptom is that the session is
// still loading. Each session owns its timer handle and cancellation state,
// so teardown is deterministic and cannot leave orphaned timers behind.
package poll

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// ErrStopped is returned by Wait when the session was torn down before a
// snapshot became final.
var ErrStopped = errors.New("polling session stopped")

// Fetch performs one snapshot attempt for the resource.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Session is a single polling run for a single resource. Attempts are
// strictly sequential: a slow attempt delays the next one instead of
// overlapping it.
type Session[T any] struct {
	name     string
	interval time.Duration
	fetch    Fetch[T]

	mu       sync.Mutex
	loading  bool
	attempts int
	snapshot []T
	final    bool

	ready    chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// New builds a session for the named resource. name only appears in
// diagnostics.
func New[T any](name string, interval time.Duration, fetch Fetch[T]) *Session[T] {
	return &Session[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		ready:    make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the polling goroutine: an immediate first attempt, then
// one attempt per timer tick until a non-empty result arrives, Stop is
// called, or ctx is cancelled.
func (s *Session[T]) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Session[T]) run(ctx context.Context) {
	if s.attempt(ctx) {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return
		case <-s.stopped:
			return
		case <-ticker.C:
			if s.attempt(ctx) {
				return
			}
		}
	}
}

// attempt runs one fetch and reports whether polling should end, either
// because a final snapshot was stored or because the session was stopped
// while the fetch was in flight.
func (s *Session[T]) attempt(ctx context.Context) bool {
	s.mu.Lock()
	s.loading = true
	s.attempts++
	s.mu.Unlock()

	result, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	select {
	case <-s.stopped:
		// The consumer lost interest while the fetch was in flight;
		// whatever settled is discarded.
		return true
	default:
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Aviso: falha ao buscar %s: %v\n", s.name, err)
		return false
	}
	if len(result) == 0 {
		// Not ready on the server yet; keep polling.
		return false
	}

	s.snapshot = result
	s.final = true
	close(s.ready)
	s.Stop()
	return true
}

// Stop cancels the session's timer. Stopping an already-stopped session is
// a no-op.
func (s *Session[T]) Stop() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

// Wait blocks until a final snapshot is available, the session is stopped,
// or ctx is cancelled.
func (s *Session[T]) Wait(ctx context.Context) ([]T, error) {
	select {
	case <-s.ready:
		return s.copySnapshot(), nil
	case <-s.stopped:
		// A session that succeeded stops itself; prefer the snapshot.
		if snap, ok := s.Snapshot(); ok {
			return snap, nil
		}
		return nil, ErrStopped
	case <-ctx.Done():
		s.Stop()
		return nil, ctx.Err()
	}
}

// Snapshot returns the stored result and whether it is final.
func (s *Session[T]) Snapshot() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.final {
		return nil, false
	}
	out := make([]T, len(s.snapshot))
	copy(out, s.snapshot)
	return out, true
}

func (s *Session[T]) copySnapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Loading reports whether a fetch attempt is currently in flight.
func (s *Session[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Attempts returns how many fetches have been issued so far.
func (s *Session[T]) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}
