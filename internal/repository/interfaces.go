package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/stride/internal/domain"
)

var (
	// ErrNotFound is domain.ErrNotFound, re-exported for store callers.
	ErrNotFound = domain.ErrNotFound

	// ErrDuplicateID is returned when an insert reuses an existing id.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNoChange may be returned by a Modify callback to leave the store
	// untouched; Modify then returns the current snapshot and a nil error.
	ErrNoChange = errors.New("no change")
)

// Entity is a record the in-memory stores can hold.
type Entity[T any] interface {
	EntityID() domain.ID
	Clone() T
}

// Store is an in-memory, copy-on-write collection. Every mutation publishes a
// new Snapshot; snapshots handed out earlier remain valid and unchanged.
type Store[T Entity[T]] interface {
	Snapshot(ctx context.Context) Snapshot[T]
	Insert(ctx context.Context, item T) (Snapshot[T], error)
	Modify(ctx context.Context, id domain.ID, fn func(T) (T, error)) (Snapshot[T], error)
	Delete(ctx context.Context, id domain.ID) (Snapshot[T], error)
}

type GoalRepo = Store[domain.Goal]

type HabitRepo = Store[domain.Habit]

// Sequence hands out unique, increasing ids.
type Sequence interface {
	NextID(ctx context.Context) (domain.ID, error)
}
