package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T, observers ...UseCaseObserver) (GoalService, HabitService) {
	t.Helper()
	seq := repository.NewMemorySequence()
	goals := NewGoalService(repository.NewGoalRepo(), seq, DefaultGoalPolicy(), observers...)
	habits := NewHabitService(repository.NewHabitRepo(), seq, observers...)
	return goals, habits
}

func createGoal(t *testing.T, svc GoalService, in domain.GoalInput) domain.Goal {
	t.Helper()
	snap, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	g, ok := snap.Last()
	require.True(t, ok)
	return g
}

func createHabit(t *testing.T, svc HabitService, in domain.HabitInput) domain.Habit {
	t.Helper()
	snap, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	h, ok := snap.Last()
	require.True(t, ok)
	return h
}

func goalInput(title string) domain.GoalInput {
	return domain.GoalInput{
		Title:    title,
		Category: domain.CategoryPersonal,
		DueDate:  domain.NewDate(2030, 1, 1),
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func ptr[T any](v T) *T { return &v }
