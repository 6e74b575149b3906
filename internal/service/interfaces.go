package service

import (
	"context"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
)

// GoalService owns the goal collection. Every mutator returns the snapshot it
// published; on error the returned snapshot is the unchanged current one.
type GoalService interface {
	Snapshot(ctx context.Context) repository.Snapshot[domain.Goal]
	Create(ctx context.Context, in domain.GoalInput) (repository.Snapshot[domain.Goal], error)
	Update(ctx context.Context, id domain.ID, patch domain.GoalPatch) (repository.Snapshot[domain.Goal], error)
	Delete(ctx context.Context, id domain.ID) (repository.Snapshot[domain.Goal], error)
	AdvanceStep(ctx context.Context, id domain.ID, step int) (repository.Snapshot[domain.Goal], error)
}

type HabitService interface {
	Snapshot(ctx context.Context) repository.Snapshot[domain.Habit]
	Create(ctx context.Context, in domain.HabitInput) (repository.Snapshot[domain.Habit], error)
	Update(ctx context.Context, id domain.ID, patch domain.HabitPatch) (repository.Snapshot[domain.Habit], error)
	Delete(ctx context.Context, id domain.ID) (repository.Snapshot[domain.Habit], error)
	ToggleCompletion(ctx context.Context, id domain.ID, day domain.Date) (repository.Snapshot[domain.Habit], error)
}

// GoalPolicy holds the tunable rules applied when goals change.
type GoalPolicy struct {
	// ReopenProgress is the progress a 100% goal drops to when it is
	// explicitly marked incomplete. Values are clamped to [0, 99].
	ReopenProgress int
}

func DefaultGoalPolicy() GoalPolicy {
	return GoalPolicy{ReopenProgress: 99}
}
