package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

// Seed loads the sample goals and habits shown on first launch. Dates are
// relative to now, in now's location.
func Seed(ctx context.Context, goals GoalService, habits HabitService, now time.Time) error {
	today := domain.DateOf(now)

	sampleGoals := []domain.GoalInput{
		{
			Title:       "Learn React with TypeScript",
			Description: "Complete a comprehensive course and build 3 projects.",
			Category:    domain.CategoryCareer,
			DueDate:     today.AddDays(30),
		},
		{
			Title:       "Run a 5k marathon",
			Description: "Train 3 times a week.",
			Category:    domain.CategoryHealth,
			DueDate:     today.AddDays(90),
		},
		{
			Title:       "Read 12 books this year",
			Description: "Finish one book per month.",
			Category:    domain.CategoryPersonal,
			DueDate:     domain.NewDate(now.Year(), time.December, 31),
			IsCompleted: true,
		},
	}
	for _, in := range sampleGoals {
		if _, err := goals.Create(ctx, in); err != nil {
			return fmt.Errorf("seeding goal %q: %w", in.Title, err)
		}
	}

	water := domain.TimeOfDay{Hour: 9}
	meditate := domain.TimeOfDay{Hour: 7}
	sampleHabits := []struct {
		in        domain.HabitInput
		doneToday bool
	}{
		{in: domain.HabitInput{Name: "Drink 8 glasses of water", Frequency: domain.FrequencyDaily, PreferredTime: &water, ReminderEnabled: true}, doneToday: true},
		{in: domain.HabitInput{Name: "Meditate for 10 minutes", Frequency: domain.FrequencyDaily, PreferredTime: &meditate, ReminderEnabled: true}},
		{in: domain.HabitInput{Name: "Weekly review", Frequency: domain.FrequencyWeekly}},
	}
	for _, sample := range sampleHabits {
		snap, err := habits.Create(ctx, sample.in)
		if err != nil {
			return fmt.Errorf("seeding habit %q: %w", sample.in.Name, err)
		}
		if !sample.doneToday {
			continue
		}
		created, _ := snap.Last()
		if _, err := habits.ToggleCompletion(ctx, created.ID, today); err != nil {
			return fmt.Errorf("seeding habit %q: %w", sample.in.Name, err)
		}
	}
	return nil
}
