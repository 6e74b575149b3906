package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/charmbracelet/huh"
)

// defaultDueDays is how far ahead a new goal's due date starts.
const defaultDueDays = 7

// goalFormValues backs the goal form fields. Numbers stay strings so huh
// inputs can bind to them directly.
type goalFormValues struct {
	Title       string
	Description string
	Category    domain.Category
	DueDate     string
	Progress    string
	Completed   bool
	TotalSteps  string
	CurrentStep string
	StepUnit    string
}

func newGoalFormValues(today domain.Date) *goalFormValues {
	return &goalFormValues{
		Category: domain.CategoryPersonal,
		DueDate:  today.AddDays(defaultDueDays).String(),
		Progress: "0",
	}
}

func goalFormValuesFrom(g domain.Goal) *goalFormValues {
	v := &goalFormValues{
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		DueDate:     g.DueDate.String(),
		Progress:    strconv.Itoa(g.Progress),
		Completed:   g.IsCompleted,
	}
	if g.IsStepTracked() {
		v.TotalSteps = strconv.Itoa(g.Steps.Total)
		v.CurrentStep = strconv.Itoa(g.Steps.Current)
		v.StepUnit = g.Steps.Unit
	}
	return v
}

func (v *goalFormValues) steps() domain.StepTracking {
	total := parseIntOr(v.TotalSteps, 0)
	if total <= 0 {
		return domain.StepTracking{}
	}
	return domain.StepTracking{
		Total:   total,
		Current: parseIntOr(v.CurrentStep, 0),
		Unit:    strings.TrimSpace(v.StepUnit),
	}
}

func (v *goalFormValues) input() (domain.GoalInput, error) {
	due, err := domain.ParseDate(strings.TrimSpace(v.DueDate))
	if err != nil {
		return domain.GoalInput{}, &domain.ValidationError{Field: "dueDate", Message: err.Error()}
	}
	return domain.GoalInput{
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		DueDate:     due,
		IsCompleted: v.Completed,
		Progress:    parseIntOr(v.Progress, 0),
		Steps:       v.steps(),
	}, nil
}

// patch sends every field. Completion is only sent when it changed from
// before, so saving an untouched 100% goal does not reopen it.
func (v *goalFormValues) patch(before domain.Goal) (domain.GoalPatch, error) {
	in, err := v.input()
	if err != nil {
		return domain.GoalPatch{}, err
	}
	p := domain.GoalPatch{
		Title:       &in.Title,
		Description: &in.Description,
		Category:    &in.Category,
		DueDate:     &in.DueDate,
		Progress:    &in.Progress,
	}
	if in.IsCompleted != before.IsCompleted {
		p.IsCompleted = &in.IsCompleted
	}
	if in.Steps.Active() {
		p.Steps = &in.Steps
	} else {
		p.ClearSteps = true
	}
	return p, nil
}

func categoryOptions(cat *locale.Catalog) []huh.Option[domain.Category] {
	opts := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, huh.NewOption(cat.CategoryLabel(c), c))
	}
	return opts
}

func frequencyOptions(cat *locale.Catalog) []huh.Option[domain.Frequency] {
	opts := make([]huh.Option[domain.Frequency], 0, len(domain.Frequencies))
	for _, f := range domain.Frequencies {
		opts = append(opts, huh.NewOption(cat.FrequencyLabel(f), f))
	}
	return opts
}

func goalForm(cat *locale.Catalog, v *goalFormValues) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewInput().
				Title(cat.T("form.title")).
				Value(&v.Title).
				Validate(validateRequired(cat.T("form.title"))),
			huh.NewText().
				Title(cat.T("form.description")).
				Lines(3).
				Value(&v.Description),
			huh.NewSelect[domain.Category]().
				Title(cat.T("form.category")).
				Options(categoryOptions(cat)...).
				Value(&v.Category),
			huh.NewInput().
				Title(cat.T("form.due_date")).
				Value(&v.DueDate).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(cat.T("form.progress")).
				Value(&v.Progress).
				Validate(validateIntRange(0, 100)),
			huh.NewConfirm().
				Title(cat.T("form.completed")).
				Value(&v.Completed),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(cat.T("form.total_steps")).
				Value(&v.TotalSteps).
				Validate(validateIntRange(0, 100000)),
			huh.NewInput().
				Title(cat.T("form.current_step")).
				Value(&v.CurrentStep).
				Validate(validateIntRange(0, 100000)),
			huh.NewInput().
				Title(cat.T("form.step_unit")).
				Value(&v.StepUnit),
		),
	)
}

type habitFormValues struct {
	Name          string
	Frequency     domain.Frequency
	PreferredTime string
	Reminder      bool
}

func newHabitFormValues() *habitFormValues {
	return &habitFormValues{Frequency: domain.FrequencyDaily}
}

func habitFormValuesFrom(h domain.Habit) *habitFormValues {
	v := &habitFormValues{
		Name:      h.Name,
		Frequency: h.Frequency,
		Reminder:  h.ReminderEnabled,
	}
	if h.PreferredTime != nil {
		v.PreferredTime = h.PreferredTime.String()
	}
	return v
}

func (v *habitFormValues) preferredTime() (*domain.TimeOfDay, error) {
	s := strings.TrimSpace(v.PreferredTime)
	if s == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil, &domain.ValidationError{Field: "preferredTime", Message: err.Error()}
	}
	return &t, nil
}

func (v *habitFormValues) input() (domain.HabitInput, error) {
	t, err := v.preferredTime()
	if err != nil {
		return domain.HabitInput{}, err
	}
	return domain.HabitInput{
		Name:            v.Name,
		Frequency:       v.Frequency,
		PreferredTime:   t,
		ReminderEnabled: v.Reminder,
	}, nil
}

func (v *habitFormValues) patch() (domain.HabitPatch, error) {
	t, err := v.preferredTime()
	if err != nil {
		return domain.HabitPatch{}, err
	}
	return domain.HabitPatch{
		Name:               &v.Name,
		Frequency:          &v.Frequency,
		PreferredTime:      t,
		ClearPreferredTime: t == nil,
		ReminderEnabled:    &v.Reminder,
	}, nil
}

func habitForm(cat *locale.Catalog, v *habitFormValues) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewInput().
				Title(cat.T("form.name")).
				Value(&v.Name).
				Validate(validateRequired(cat.T("form.name"))),
			huh.NewSelect[domain.Frequency]().
				Title(cat.T("form.frequency")).
				Options(frequencyOptions(cat)...).
				Value(&v.Frequency),
			huh.NewInput().
				Title(cat.T("form.preferred_time")).
				Value(&v.PreferredTime).
				Validate(validateOptionalTime),
			huh.NewConfirm().
				Title(cat.T("form.reminder")).
				Value(&v.Reminder),
		),
	)
}
