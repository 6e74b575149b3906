package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

var testIDCounter atomic.Int64

// FixedNow is the reference instant used by fixtures and fake clocks.
var FixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

// Today is the calendar day of FixedNow.
var Today = domain.DateOf(FixedNow)

func nextID() domain.ID {
	return domain.ID(testIDCounter.Add(1))
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalID(id domain.ID) GoalOption {
	return func(g *domain.Goal) {
		g.ID = id
	}
}

func WithCategory(c domain.Category) GoalOption {
	return func(g *domain.Goal) {
		g.Category = c
	}
}

func WithDueDate(d domain.Date) GoalOption {
	return func(g *domain.Goal) {
		g.DueDate = d
	}
}

func WithDueInDays(n int) GoalOption {
	return func(g *domain.Goal) {
		g.DueDate = Today.AddDays(n)
	}
}

func WithProgress(p int) GoalOption {
	return func(g *domain.Goal) {
		g.Progress = p
	}
}

func WithCompleted() GoalOption {
	return func(g *domain.Goal) {
		g.IsCompleted = true
		g.Progress = 100
	}
}

func WithSteps(current, total int, unit string) GoalOption {
	return func(g *domain.Goal) {
		g.Steps = domain.StepTracking{Total: total, Current: current, Unit: unit}
		g.SetStep(current)
	}
}

func WithDescription(desc string) GoalOption {
	return func(g *domain.Goal) {
		g.Description = desc
	}
}

func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:        nextID(),
		Title:     title,
		Category:  domain.CategoryPersonal,
		DueDate:   Today.AddDays(7),
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Habit options
type HabitOption func(*domain.Habit)

func WithHabitID(id domain.ID) HabitOption {
	return func(h *domain.Habit) {
		h.ID = id
	}
}

func WithFrequency(f domain.Frequency) HabitOption {
	return func(h *domain.Habit) {
		h.Frequency = f
	}
}

func WithPreferredTime(hour, minute int) HabitOption {
	return func(h *domain.Habit) {
		h.PreferredTime = &domain.TimeOfDay{Hour: hour, Minute: minute}
	}
}

func WithReminder() HabitOption {
	return func(h *domain.Habit) {
		h.ReminderEnabled = true
	}
}

// WithCompletedOn marks the habit done on each of the given days.
func WithCompletedOn(days ...domain.Date) HabitOption {
	return func(h *domain.Habit) {
		for _, d := range days {
			if !h.CompletedOn(d) {
				h.ToggleDate(d)
			}
		}
	}
}

func NewTestHabit(name string, opts ...HabitOption) domain.Habit {
	h := domain.Habit{
		ID:             nextID(),
		Name:           name,
		Frequency:      domain.FrequencyDaily,
		CreatedAt:      FixedNow,
		CompletedDates: []domain.Date{},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Ptr returns a pointer to v, for building patches in tests.
func Ptr[T any](v T) *T { return &v }
