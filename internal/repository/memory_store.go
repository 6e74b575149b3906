package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/stride/internal/domain"
)

// MemoryStore implements Store. Readers load the published snapshot without
// locking; writers serialize on mu and always build a fresh backing slice.
type MemoryStore[T Entity[T]] struct {
	kind    string
	mu      sync.Mutex
	current atomic.Pointer[Snapshot[T]]
}

// NewMemoryStore creates an empty store. kind names the record type in errors.
func NewMemoryStore[T Entity[T]](kind string) *MemoryStore[T] {
	s := &MemoryStore[T]{kind: kind}
	s.current.Store(&Snapshot[T]{})
	return s
}

func NewGoalRepo() *MemoryStore[domain.Goal] {
	return NewMemoryStore[domain.Goal]("goal")
}

func NewHabitRepo() *MemoryStore[domain.Habit] {
	return NewMemoryStore[domain.Habit]("habit")
}

func (s *MemoryStore[T]) Snapshot(_ context.Context) Snapshot[T] {
	return *s.current.Load()
}

func (s *MemoryStore[T]) Insert(ctx context.Context, item T) (Snapshot[T], error) {
	if err := ctx.Err(); err != nil {
		return s.Snapshot(ctx), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	id := item.EntityID()
	if cur.Contains(id) {
		return *cur, fmt.Errorf("%s %d: %w", s.kind, id, ErrDuplicateID)
	}

	items := make([]T, 0, len(cur.items)+1)
	items = append(items, cur.items...)
	items = append(items, item.Clone())
	return s.publish(cur, items), nil
}

func (s *MemoryStore[T]) Modify(ctx context.Context, id domain.ID, fn func(T) (T, error)) (Snapshot[T], error) {
	if err := ctx.Err(); err != nil {
		return s.Snapshot(ctx), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := cur.indexOf(id)
	if i < 0 {
		return *cur, fmt.Errorf("%s %d: %w", s.kind, id, ErrNotFound)
	}

	updated, err := fn(cur.items[i].Clone())
	if errors.Is(err, ErrNoChange) {
		return *cur, nil
	}
	if err != nil {
		return *cur, err
	}
	if updated.EntityID() != id {
		return *cur, fmt.Errorf("%s %d: id cannot change to %d", s.kind, id, updated.EntityID())
	}

	items := make([]T, len(cur.items))
	copy(items, cur.items)
	items[i] = updated.Clone()
	return s.publish(cur, items), nil
}

func (s *MemoryStore[T]) Delete(ctx context.Context, id domain.ID) (Snapshot[T], error) {
	if err := ctx.Err(); err != nil {
		return s.Snapshot(ctx), err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	i := cur.indexOf(id)
	if i < 0 {
		return *cur, fmt.Errorf("%s %d: %w", s.kind, id, ErrNotFound)
	}

	items := make([]T, 0, len(cur.items)-1)
	items = append(items, cur.items[:i]...)
	items = append(items, cur.items[i+1:]...)
	return s.publish(cur, items), nil
}

// publish must be called with mu held.
func (s *MemoryStore[T]) publish(prev *Snapshot[T], items []T) Snapshot[T] {
	next := &Snapshot[T]{items: items, version: prev.version + 1}
	s.current.Store(next)
	return *next
}
