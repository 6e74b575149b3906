package stats

import (
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

type DailyHabit struct {
	Habit          domain.Habit
	CompletedToday bool
}

// Dashboard bundles every derived view for one render.
type Dashboard struct {
	Today            domain.Date
	Goals            StatusSplit
	OverdueCount     int
	Overdue          []domain.Goal
	Categories       []CategoryCount
	HabitCount       int
	HabitCompletions []HabitCompletion
	DailyHabits      []DailyHabit
}

func BuildDashboard(goals []domain.Goal, habits []domain.Habit, now time.Time) Dashboard {
	today := domain.DateOf(now)
	daily := DailyHabits(habits)
	rows := make([]DailyHabit, 0, len(daily))
	for _, h := range daily {
		rows = append(rows, DailyHabit{Habit: h, CompletedToday: h.CompletedOn(today)})
	}
	overdue := Overdue(goals, now)
	return Dashboard{
		Today:            today,
		Goals:            GoalStatus(goals),
		OverdueCount:     len(overdue),
		Overdue:          overdue,
		Categories:       CategoryHistogram(goals),
		HabitCount:       len(habits),
		HabitCompletions: HabitCompletions(habits),
		DailyHabits:      rows,
	}
}
