package httpapi

import (
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/stats"
)

type stepsDTO struct {
	Total   int    `json:"totalSteps"`
	Current int    `json:"currentStep"`
	Unit    string `json:"stepUnit"`
}

type goalDTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	DueDate       string    `json:"dueDate"`
	IsCompleted   bool      `json:"isCompleted"`
	Progress      int       `json:"progress"`
	CreatedAt     time.Time `json:"createdAt"`
	Steps         *stepsDTO `json:"steps,omitempty"`
	DaysRemaining int       `json:"daysRemaining"`
	// Overdue matches the dashboard's overdue list: due before today.
	Overdue       bool      `json:"overdue"`
}

func toGoalDTO(g domain.Goal, now time.Time) goalDTO {
	days, _ := stats.DaysRemaining(g, now)
	dto := goalDTO{
		ID:            int64(g.ID),
		Title:         g.Title,
		Description:   g.Description,
		Category:      string(g.Category),
		DueDate:       g.DueDate.String(),
		IsCompleted:   g.IsCompleted,
		Progress:      g.Progress,
		CreatedAt:     g.CreatedAt,
		DaysRemaining: days,
		Overdue:       stats.IsOverdue(g, now),
	}
	if g.IsStepTracked() {
		dto.Steps = &stepsDTO{Total: g.Steps.Total, Current: g.Steps.Current, Unit: g.Steps.Unit}
	}
	return dto
}

func toGoalDTOs(goals []domain.Goal, now time.Time) []goalDTO {
	out := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalDTO(g, now))
	}
	return out
}

// goalRequest is shared by create and update; absent fields stay nil.
type goalRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	DueDate     *string   `json:"dueDate"`
	IsCompleted *bool     `json:"isCompleted"`
	Progress    *int      `json:"progress"`
	Steps       *stepsDTO `json:"steps"`
	ClearSteps  bool      `json:"clearSteps"`
}

func (r goalRequest) patch() (domain.GoalPatch, error) {
	p := domain.GoalPatch{
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		Progress:    r.Progress,
		ClearSteps:  r.ClearSteps,
	}
	if r.Category != nil {
		c, err := locale.ParseCategory(*r.Category)
		if err != nil {
			return p, badRequest("category", err.Error())
		}
		p.Category = &c
	}
	if r.DueDate != nil {
		d, err := domain.ParseDate(*r.DueDate)
		if err != nil {
			return p, badRequest("dueDate", err.Error())
		}
		p.DueDate = &d
	}
	if r.Steps != nil {
		p.Steps = &domain.StepTracking{Total: r.Steps.Total, Current: r.Steps.Current, Unit: r.Steps.Unit}
	}
	return p, nil
}

func (r goalRequest) input() (domain.GoalInput, error) {
	p, err := r.patch()
	if err != nil {
		return domain.GoalInput{}, err
	}
	g := p.Apply(domain.Goal{})
	return domain.GoalInput{
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		DueDate:     g.DueDate,
		IsCompleted: g.IsCompleted,
		Progress:    g.Progress,
		Steps:       g.Steps,
	}, nil
}

type habitDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Frequency       string    `json:"frequency"`
	PreferredTime   string    `json:"preferredTime,omitempty"`
	ReminderEnabled bool      `json:"reminderEnabled"`
	CreatedAt       time.Time `json:"createdAt"`
	CompletedDates  []string  `json:"completedDates"`
	CompletionCount int       `json:"completionCount"`
}

func toHabitDTO(h domain.Habit) habitDTO {
	dto := habitDTO{
		ID:              int64(h.ID),
		Name:            h.Name,
		Frequency:       string(h.Frequency),
		ReminderEnabled: h.ReminderEnabled,
		CreatedAt:       h.CreatedAt,
		CompletedDates:  make([]string, 0, len(h.CompletedDates)),
		CompletionCount: h.CompletionCount(),
	}
	if h.PreferredTime != nil {
		dto.PreferredTime = h.PreferredTime.String()
	}
	for _, d := range h.CompletedDates {
		dto.CompletedDates = append(dto.CompletedDates, d.String())
	}
	return dto
}

func toHabitDTOs(habits []domain.Habit) []habitDTO {
	out := make([]habitDTO, 0, len(habits))
	for _, h := range habits {
		out = append(out, toHabitDTO(h))
	}
	return out
}

type habitRequest struct {
	Name            *string `json:"name"`
	Frequency       *string `json:"frequency"`
	PreferredTime   *string `json:"preferredTime"`
	ReminderEnabled *bool   `json:"reminderEnabled"`
}

// patch treats an empty preferredTime as a request to clear it.
func (r habitRequest) patch() (domain.HabitPatch, error) {
	p := domain.HabitPatch{Name: r.Name, ReminderEnabled: r.ReminderEnabled}
	if r.Frequency != nil {
		f, err := locale.ParseFrequency(*r.Frequency)
		if err != nil {
			return p, badRequest("frequency", err.Error())
		}
		p.Frequency = &f
	}
	if r.PreferredTime != nil {
		if *r.PreferredTime == "" {
			p.ClearPreferredTime = true
		} else {
			t, err := domain.ParseTimeOfDay(*r.PreferredTime)
			if err != nil {
				return p, badRequest("preferredTime", err.Error())
			}
			p.PreferredTime = &t
		}
	}
	return p, nil
}

func (r habitRequest) input() (domain.HabitInput, error) {
	p, err := r.patch()
	if err != nil {
		return domain.HabitInput{}, err
	}
	h := p.Apply(domain.Habit{})
	return domain.HabitInput{
		Name:            h.Name,
		Frequency:       h.Frequency,
		PreferredTime:   h.PreferredTime,
		ReminderEnabled: h.ReminderEnabled,
	}, nil
}

type stepRequest struct {
	Step *int `json:"step"`
}

type toggleRequest struct {
	Date string `json:"date"`
}

type suggestionsResponse struct {
	Suggestions []suggestionDTO `json:"suggestions"`
	Error       string          `json:"error,omitempty"`
}

type suggestionDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type categoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type habitCompletionDTO struct {
	HabitID int64  `json:"habitId"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

type dailyHabitDTO struct {
	habitDTO
	CompletedToday bool `json:"completedToday"`
}

type dashboardDTO struct {
	Today            string               `json:"today"`
	TotalGoals       int                  `json:"totalGoals"`
	CompletedGoals   int                  `json:"completedGoals"`
	PendingGoals     int                  `json:"pendingGoals"`
	OverdueCount     int                  `json:"overdueCount"`
	Overdue          []goalDTO            `json:"overdue"`
	Categories       []categoryCountDTO   `json:"categories"`
	HabitCount       int                  `json:"habitCount"`
	HabitCompletions []habitCompletionDTO `json:"habitCompletions"`
	DailyHabits      []dailyHabitDTO      `json:"dailyHabits"`
}

func toDashboardDTO(d stats.Dashboard, now time.Time) dashboardDTO {
	dto := dashboardDTO{
		Today:            d.Today.String(),
		TotalGoals:       d.Goals.Total,
		CompletedGoals:   d.Goals.Completed,
		PendingGoals:     d.Goals.Pending,
		OverdueCount:     d.OverdueCount,
		Overdue:          toGoalDTOs(d.Overdue, now),
		Categories:       make([]categoryCountDTO, 0, len(d.Categories)),
		HabitCount:       d.HabitCount,
		HabitCompletions: make([]habitCompletionDTO, 0, len(d.HabitCompletions)),
		DailyHabits:      make([]dailyHabitDTO, 0, len(d.DailyHabits)),
	}
	for _, c := range d.Categories {
		dto.Categories = append(dto.Categories, categoryCountDTO{Category: string(c.Category), Count: c.Count})
	}
	for _, hc := range d.HabitCompletions {
		dto.HabitCompletions = append(dto.HabitCompletions, habitCompletionDTO{HabitID: int64(hc.HabitID), Name: hc.Name, Count: hc.Count})
	}
	for _, dh := range d.DailyHabits {
		dto.DailyHabits = append(dto.DailyHabits, dailyHabitDTO{habitDTO: toHabitDTO(dh.Habit), CompletedToday: dh.CompletedToday})
	}
	return dto
}
