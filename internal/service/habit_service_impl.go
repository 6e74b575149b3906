package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
)

type habitService struct {
	habits   repository.HabitRepo
	seq      repository.Sequence
	observer UseCaseObserver
}

func NewHabitService(
	habits repository.HabitRepo,
	seq repository.Sequence,
	observers ...UseCaseObserver,
) HabitService {
	return &habitService{
		habits:   habits,
		seq:      seq,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *habitService) Snapshot(ctx context.Context) repository.Snapshot[domain.Habit] {
	return s.habits.Snapshot(ctx)
}

func (s *habitService) Create(ctx context.Context, in domain.HabitInput) (snap repository.Snapshot[domain.Habit], err error) {
	fields := map[string]any{"frequency": string(in.Frequency)}
	defer observe(ctx, s.observer, "create-habit", time.Now(), fields, &err)

	h := domain.Habit{
		Name:            strings.TrimSpace(in.Name),
		Frequency:       in.Frequency,
		ReminderEnabled: in.ReminderEnabled,
		CompletedDates:  []domain.Date{},
	}
	if in.PreferredTime != nil {
		t := *in.PreferredTime
		h.PreferredTime = &t
	}
	if err = h.Validate(); err != nil {
		return s.habits.Snapshot(ctx), err
	}

	h.ID, err = s.seq.NextID(ctx)
	if err != nil {
		return s.habits.Snapshot(ctx), err
	}
	h.CreatedAt = time.Now().UTC()
	fields["habit_id"] = int64(h.ID)

	return s.habits.Insert(ctx, h)
}

func (s *habitService) Update(ctx context.Context, id domain.ID, patch domain.HabitPatch) (snap repository.Snapshot[domain.Habit], err error) {
	defer observe(ctx, s.observer, "update-habit", time.Now(), map[string]any{"habit_id": int64(id)}, &err)

	return s.habits.Modify(ctx, id, func(cur domain.Habit) (domain.Habit, error) {
		next := patch.Apply(cur)
		next.Name = strings.TrimSpace(next.Name)
		if err := next.Validate(); err != nil {
			return cur, err
		}
		return next, nil
	})
}

func (s *habitService) Delete(ctx context.Context, id domain.ID) (snap repository.Snapshot[domain.Habit], err error) {
	defer observe(ctx, s.observer, "delete-habit", time.Now(), map[string]any{"habit_id": int64(id)}, &err)

	return s.habits.Delete(ctx, id)
}

func (s *habitService) ToggleCompletion(ctx context.Context, id domain.ID, day domain.Date) (snap repository.Snapshot[domain.Habit], err error) {
	fields := map[string]any{"habit_id": int64(id), "date": day.String()}
	defer observe(ctx, s.observer, "toggle-habit", time.Now(), fields, &err)

	if day.IsZero() {
		err = &domain.ValidationError{Field: "date", Message: "date is required"}
		return s.habits.Snapshot(ctx), err
	}
	return s.habits.Modify(ctx, id, func(cur domain.Habit) (domain.Habit, error) {
		fields["completed"] = cur.ToggleDate(day)
		return cur, nil
	})
}
