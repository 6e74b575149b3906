package domain

import (
	"slices"
	"strings"
	"time"
)

type Habit struct {
	ID              ID
	Name            string
	Frequency       Frequency
	PreferredTime   *TimeOfDay
	ReminderEnabled bool // stored only; nothing sends reminders
	CreatedAt       time.Time

	// CompletedDates is kept sorted ascending and free of duplicates.
	CompletedDates []Date
}

func (h Habit) EntityID() ID { return h.ID }

// Clone returns a copy that shares no memory with h.
func (h Habit) Clone() Habit {
	if h.PreferredTime != nil {
		t := *h.PreferredTime
		h.PreferredTime = &t
	}
	h.CompletedDates = slices.Clone(h.CompletedDates)
	return h
}

// CompletedOn reports whether the habit was marked done on d.
func (h Habit) CompletedOn(d Date) bool {
	_, found := slices.BinarySearchFunc(h.CompletedDates, d, compareDates)
	return found
}

// CompletionCount is the number of distinct days the habit was marked done.
func (h Habit) CompletionCount() int { return len(h.CompletedDates) }

// ToggleDate removes d from the completion set if present and adds it
// otherwise. It returns whether d is completed afterwards. A fresh slice is
// always built so earlier copies of the habit never observe the change.
func (h *Habit) ToggleDate(d Date) bool {
	i, found := slices.BinarySearchFunc(h.CompletedDates, d, compareDates)
	next := make([]Date, 0, len(h.CompletedDates)+1)
	next = append(next, h.CompletedDates[:i]...)
	if !found {
		next = append(next, d)
		next = append(next, h.CompletedDates[i:]...)
	} else {
		next = append(next, h.CompletedDates[i+1:]...)
	}
	h.CompletedDates = next
	return !found
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return invalid("name", "habit name is required")
	}
	if !h.Frequency.Valid() {
		return invalid("frequency", "unknown frequency %q", h.Frequency)
	}
	if t := h.PreferredTime; t != nil && (t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59) {
		return invalid("preferredTime", "preferred time %s is out of range", t)
	}
	return nil
}

// HabitInput holds the user-supplied fields of a new habit.
type HabitInput struct {
	Name            string
	Frequency       Frequency
	PreferredTime   *TimeOfDay
	ReminderEnabled bool
}

// HabitPatch carries the fields of an update; nil fields are left as they are.
// Completion dates change only through ToggleDate.
type HabitPatch struct {
	Name               *string
	Frequency          *Frequency
	PreferredTime      *TimeOfDay
	ClearPreferredTime bool
	ReminderEnabled    *bool
}

func (p HabitPatch) Apply(h Habit) Habit {
	h.Name = FromPtr(h.Name, p.Name)
	h.Frequency = FromPtr(h.Frequency, p.Frequency)
	if p.PreferredTime != nil {
		t := *p.PreferredTime
		h.PreferredTime = &t
	}
	if p.ClearPreferredTime {
		h.PreferredTime = nil
	}
	h.ReminderEnabled = FromPtr(h.ReminderEnabled, p.ReminderEnabled)
	return h
}

func compareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}
