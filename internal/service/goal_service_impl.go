package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
)

type goalService struct {
	goals    repository.GoalRepo
	seq      repository.Sequence
	policy   GoalPolicy
	observer UseCaseObserver
}

func NewGoalService(
	goals repository.GoalRepo,
	seq repository.Sequence,
	policy GoalPolicy,
	observers ...UseCaseObserver,
) GoalService {
	return &goalService{
		goals:    goals,
		seq:      seq,
		policy:   policy,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) Snapshot(ctx context.Context) repository.Snapshot[domain.Goal] {
	return s.goals.Snapshot(ctx)
}

func (s *goalService) Create(ctx context.Context, in domain.GoalInput) (snap repository.Snapshot[domain.Goal], err error) {
	fields := map[string]any{"category": string(in.Category)}
	defer observe(ctx, s.observer, "create-goal", time.Now(), fields, &err)

	g := domain.Goal{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		DueDate:     in.DueDate,
		IsCompleted: in.IsCompleted,
		Progress:    in.Progress,
		Steps:       in.Steps,
	}
	if err = g.Validate(); err != nil {
		return s.goals.Snapshot(ctx), err
	}
	g.Reconcile(false, s.policy.ReopenProgress)

	g.ID, err = s.seq.NextID(ctx)
	if err != nil {
		return s.goals.Snapshot(ctx), err
	}
	g.CreatedAt = time.Now().UTC()
	fields["goal_id"] = int64(g.ID)

	return s.goals.Insert(ctx, g)
}

func (s *goalService) Update(ctx context.Context, id domain.ID, patch domain.GoalPatch) (snap repository.Snapshot[domain.Goal], err error) {
	defer observe(ctx, s.observer, "update-goal", time.Now(), map[string]any{"goal_id": int64(id)}, &err)

	return s.goals.Modify(ctx, id, func(cur domain.Goal) (domain.Goal, error) {
		next := patch.Apply(cur)
		next.Title = strings.TrimSpace(next.Title)
		next.Description = strings.TrimSpace(next.Description)
		if err := next.Validate(); err != nil {
			return cur, err
		}
		next.Reconcile(patch.Reopens(), s.policy.ReopenProgress)
		return next, nil
	})
}

func (s *goalService) Delete(ctx context.Context, id domain.ID) (snap repository.Snapshot[domain.Goal], err error) {
	defer observe(ctx, s.observer, "delete-goal", time.Now(), map[string]any{"goal_id": int64(id)}, &err)

	return s.goals.Delete(ctx, id)
}

// AdvanceStep sets the current step of a step-tracked goal. Percentage-tracked
// goals are left untouched and the current snapshot is returned.
func (s *goalService) AdvanceStep(ctx context.Context, id domain.ID, step int) (snap repository.Snapshot[domain.Goal], err error) {
	fields := map[string]any{"goal_id": int64(id), "step": step}
	defer observe(ctx, s.observer, "advance-step", time.Now(), fields, &err)

	return s.goals.Modify(ctx, id, func(cur domain.Goal) (domain.Goal, error) {
		if !cur.SetStep(step) {
			fields["skipped"] = true
			return cur, repository.ErrNoChange
		}
		return cur, nil
	})
}
