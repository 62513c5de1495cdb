// Package resource implements the async state container shared by every
// domain store. A Store holds a list of entities plus the loading and error
// flags the presentation layer renders from, and runs backend calls through
// one state machine: loading on and error cleared at dispatch, then either a
// merge of the result or an error message at settlement. Prior data is never
// touched on failure.
package resource

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// State is a point-in-time snapshot of a store.
type State[T any] struct {
	Items     []T
	IsLoading bool
	Err       string
}

// Store is a concurrency-safe list container. Merge policies: a fetch
// replaces the whole list, a create prepends (newest first), an update
// replaces the matching entity in place and is a no-op when the id is
// absent. Overlapping fetches are allowed; a fetch result is discarded if a
// newer fetch was issued after it, so the latest-issued fetch always wins.
type Store[T any] struct {
	mu       sync.Mutex
	items    []T
	inflight int
	err      string
	issued   uint64
	applied  uint64
	key      func(T) string
	log      zerolog.Logger
}

// NewStore builds a store whose entities are identified by key.
func NewStore[T any](key func(T) string, logger zerolog.Logger) *Store[T] {
	return &Store[T]{key: key, log: logger}
}

// State returns a snapshot with a copied item slice.
func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return State[T]{Items: items, IsLoading: s.inflight > 0, Err: s.err}
}

// Items returns a copy of the current item list.
func (s *Store[T]) Items() []T { return s.State().Items }

// Len returns the current number of items.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsLoading reports whether any action is in flight.
func (s *Store[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the last recorded error message, empty when none.
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearError resets the error message without touching any other state, so
// an error banner can be dismissed independently of retrying.
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// begin marks an action as dispatched: loading on, stale error cleared.
func (s *Store[T]) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

// fail settles an action with an error. Items are left untouched.
func (s *Store[T]) fail(err error) {
	s.mu.Lock()
	s.inflight--
	s.err = err.Error()
	s.mu.Unlock()
}

// Fetch replaces the item list with the result of fn.
func (s *Store[T]) Fetch(ctx context.Context, fn func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	items, err := fn(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.inflight--
	if seq > s.applied {
		s.applied = seq
		s.items = items
	} else {
		s.log.Debug().Uint64("seq", seq).Uint64("applied", s.applied).Msg("stale fetch result discarded")
	}
	s.mu.Unlock()
	return nil
}

// Create prepends the entity returned by fn and returns it.
func (s *Store[T]) Create(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	s.begin()
	item, err := fn(ctx)
	if err != nil {
		s.fail(err)
		return item, err
	}

	s.mu.Lock()
	s.inflight--
	s.items = append([]T{item}, s.items...)
	s.mu.Unlock()
	return item, nil
}

// Update replaces the entity matching the result's key in place and returns
// it. An absent key leaves the list unchanged.
func (s *Store[T]) Update(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	s.begin()
	item, err := fn(ctx)
	if err != nil {
		s.fail(err)
		return item, err
	}

	id := s.key(item)
	s.mu.Lock()
	s.inflight--
	found := false
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items[i] = item
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		s.log.Debug().Str("id", id).Msg("update matched no cached entity")
	}
	return item, nil
}

// Run executes fn and, on success, applies mutate to the item slice under
// the store lock. It backs actions that patch entities without replacing
// them, such as flag toggles.
func (s *Store[T]) Run(ctx context.Context, fn func(context.Context) error, mutate func(items []T)) error {
	s.begin()
	if err := fn(ctx); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.inflight--
	if mutate != nil {
		mutate(s.items)
	}
	s.mu.Unlock()
	return nil
}
