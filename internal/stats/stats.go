// Package stats computes the read-only views shown on the dashboard. Every
// function is pure and recomputes from the snapshot it is given.
package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

type StatusSplit struct {
	Total     int
	Completed int
	Pending   int
}

func GoalStatus(goals []domain.Goal) StatusSplit {
	s := StatusSplit{Total: len(goals)}
	for _, g := range goals {
		if g.IsCompleted {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// isOverdue compares against a precomputed today so one call never straddles
// midnight.
func isOverdue(g domain.Goal, today domain.Date) bool {
	return !g.IsCompleted && g.DueDate.Before(today)
}

// IsOverdue reports whether g is pending with a due date before today. A goal
// due today is not overdue here, even though DaysRemaining already reports 0
// days and flags it for the due label.
func IsOverdue(g domain.Goal, now time.Time) bool {
	return isOverdue(g, domain.DateOf(now))
}

// OverdueCount counts pending goals whose due date is before today.
func OverdueCount(goals []domain.Goal, now time.Time) int {
	today := domain.DateOf(now)
	n := 0
	for _, g := range goals {
		if isOverdue(g, today) {
			n++
		}
	}
	return n
}

// Overdue returns the overdue goals in snapshot order.
func Overdue(goals []domain.Goal, now time.Time) []domain.Goal {
	today := domain.DateOf(now)
	out := []domain.Goal{}
	for _, g := range goals {
		if isOverdue(g, today) {
			out = append(out, g)
		}
	}
	return out
}

type CategoryCount struct {
	Category domain.Category
	Count    int
}

// CategoryHistogram counts goals per category. Only categories with at least
// one goal appear, in canonical category order.
func CategoryHistogram(goals []domain.Goal) []CategoryCount {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for _, g := range goals {
		counts[g.Category]++
	}
	out := []CategoryCount{}
	for _, c := range domain.Categories {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}

// DaysRemaining is the number of days from now until local midnight of the
// due date, rounded up. A non-positive result is reported as overdue.
func DaysRemaining(g domain.Goal, now time.Time) (days int, overdue bool) {
	due := g.DueDate.In(now.Location())
	days = int(math.Ceil(due.Sub(now).Hours() / 24))
	return days, days <= 0
}

type HabitCompletion struct {
	HabitID domain.ID
	Name    string
	Count   int
}

func HabitCompletions(habits []domain.Habit) []HabitCompletion {
	out := make([]HabitCompletion, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitCompletion{HabitID: h.ID, Name: h.Name, Count: h.CompletionCount()})
	}
	return out
}

// DailyHabits returns the habits with daily frequency in snapshot order.
func DailyHabits(habits []domain.Habit) []domain.Habit {
	out := []domain.Habit{}
	for _, h := range habits {
		if h.Frequency == domain.FrequencyDaily {
			out = append(out, h)
		}
	}
	return out
}
