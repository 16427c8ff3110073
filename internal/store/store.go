// Package store holds one resource collection in memory and reduces the
// results of its own async actions into it. Derived views never mutate it.
package store

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrReadOnly = errors.New("resource is read-only")

type Entity interface {
	EntityID() string
}

// Actions are the API calls a store dispatches. Nil Create/Update marks the
// resource read-only (Reviews).
type Actions[T Entity] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, payload T) (T, error)
	Update func(ctx context.Context, id string, patch map[string]any) (T, error)
	Delete func(ctx context.Context, id string) error
}

type options struct {
	appendOnCreate bool
	log            *zap.Logger
}

type Option func(*options)

// AppendOnCreate makes a successful create append the server echo to the
// collection (Products, Orders). Without it the collection is left for a
// follow-up refetch (Categories, Customers).
func AppendOnCreate() Option {
	return func(o *options) { o.appendOnCreate = true }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

type Store[T Entity] struct {
	acts Actions[T]
	opts options

	mu      sync.Mutex
	items   []T
	loading bool
	err     string
}

func New[T Entity](acts Actions[T], opts ...Option) *Store[T] {
	s := &Store[T]{acts: acts}
	for _, o := range opts {
		o(&s.opts)
	}
	return s
}

// FetchAll replaces the whole collection with the server's list, in server
// order. On failure the previous collection stays visible and the error
// message is recorded. The lock is not held across the network call, so
// overlapping fetches resolve last-response-wins, exactly like the original
// un-fenced thunks.
func (s *Store[T]) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.acts.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		if s.opts.log != nil {
			s.opts.log.Warn("fetch failed", zap.Error(err))
		}
		return err
	}
	s.items = items
	return nil
}

// Create sends an already-defaulted payload and, for append-on-create
// stores, appends the server echo at the end of the collection. The server's
// id is authoritative; the candidate id in the payload is only a placeholder.
func (s *Store[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T
	if s.acts.Create == nil {
		return zero, ErrReadOnly
	}
	created, err := s.acts.Create(ctx, payload)
	if err != nil {
		return zero, err
	}
	if s.opts.appendOnCreate {
		s.mu.Lock()
		s.items = append(s.items, created)
		s.mu.Unlock()
	}
	return created, nil
}

// Update replaces the matching entity in place with the server echo. An id
// absent from the local collection is a silent no-op.
func (s *Store[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T
	if s.acts.Update == nil {
		return zero, ErrReadOnly
	}
	updated, err := s.acts.Update(ctx, id, patch)
	if err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == updated.EntityID() {
			s.items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete drops the matching entity once the server confirms. Absent id is a
// no-op.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.acts.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

// Items returns a copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// State returns a snapshot of the collection, the loading flag and the last
// recorded fetch error. The error is sticky: a later successful fetch does
// not clear it, matching the original reducer.
func (s *Store[T]) State() ([]T, bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...), s.loading, s.err
}
