package cli

import (
	"github.com/alexanderramin/stride/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// The actions below run synchronously inside Update so that the refresh
// that follows always sees the new snapshot. They return a flash command
// describing the outcome.

func (s *SharedState) result(err error, okKey string) tea.Cmd {
	if err != nil {
		return flashError(s.ErrorText(err))
	}
	return flash(s.T(okKey))
}

func (s *SharedState) createGoal(v *goalFormValues) tea.Cmd {
	in, err := v.input()
	if err == nil {
		_, err = s.App.Goals.Create(s.Ctx, in)
	}
	return s.result(err, "status.saved")
}

func (s *SharedState) updateGoal(before domain.Goal, v *goalFormValues) tea.Cmd {
	p, err := v.patch(before)
	if err == nil {
		_, err = s.App.Goals.Update(s.Ctx, before.ID, p)
	}
	return s.result(err, "status.saved")
}

func (s *SharedState) deleteGoal(id domain.ID) tea.Cmd {
	_, err := s.App.Goals.Delete(s.Ctx, id)
	return s.result(err, "status.deleted")
}

func (s *SharedState) advanceStep(g domain.Goal, delta int) tea.Cmd {
	if !g.IsStepTracked() {
		return nil
	}
	_, err := s.App.Goals.AdvanceStep(s.Ctx, g.ID, g.Steps.Current+delta)
	if err != nil {
		return flashError(s.ErrorText(err))
	}
	return nil
}

// toggleGoalDone flips completion of a percentage-tracked goal.
func (s *SharedState) toggleGoalDone(g domain.Goal) tea.Cmd {
	if g.IsStepTracked() {
		return nil
	}
	done := !g.IsCompleted
	_, err := s.App.Goals.Update(s.Ctx, g.ID, domain.GoalPatch{IsCompleted: &done})
	if err != nil {
		return flashError(s.ErrorText(err))
	}
	return nil
}

func (s *SharedState) createHabit(v *habitFormValues) tea.Cmd {
	in, err := v.input()
	if err == nil {
		_, err = s.App.Habits.Create(s.Ctx, in)
	}
	return s.result(err, "status.saved")
}

func (s *SharedState) updateHabit(id domain.ID, v *habitFormValues) tea.Cmd {
	p, err := v.patch()
	if err == nil {
		_, err = s.App.Habits.Update(s.Ctx, id, p)
	}
	return s.result(err, "status.saved")
}

func (s *SharedState) deleteHabit(id domain.ID) tea.Cmd {
	_, err := s.App.Habits.Delete(s.Ctx, id)
	return s.result(err, "status.deleted")
}

func (s *SharedState) toggleHabitToday(id domain.ID) tea.Cmd {
	_, err := s.App.Habits.ToggleCompletion(s.Ctx, id, s.Today())
	if err != nil {
		return flashError(s.ErrorText(err))
	}
	return nil
}

// ── form launchers ───────────────────────────────────────────────────────────

// newGoalWizard builds the creation form, starting from v when given.
func (s *SharedState) newGoalWizard(v *goalFormValues) *wizardView {
	if v == nil {
		v = newGoalFormValues(s.Today())
	}
	return newWizardView(s, s.T("form.new_goal"), goalForm(s.Catalog(), v), func() tea.Cmd {
		return s.createGoal(v)
	})
}

func (s *SharedState) newGoalCmd() tea.Cmd { return pushView(s.newGoalWizard(nil)) }

func (s *SharedState) editGoalCmd(g domain.Goal) tea.Cmd {
	v := goalFormValuesFrom(g)
	return startWizardCmd(s, s.T("form.edit_goal"), goalForm(s.Catalog(), v), func() tea.Cmd {
		return s.updateGoal(g, v)
	})
}

func (s *SharedState) confirmDeleteGoalCmd(g domain.Goal) tea.Cmd {
	var ok bool
	cat := s.Catalog()
	form := wizardConfirm(cat.Tf("confirm.delete_goal", g.Title), cat.T("confirm.yes"), cat.T("confirm.no"), &ok)
	return startWizardCmd(s, s.T("nav.goals"), form, func() tea.Cmd {
		if !ok {
			return nil
		}
		return s.deleteGoal(g.ID)
	})
}

func (s *SharedState) newHabitWizard(v *habitFormValues) *wizardView {
	if v == nil {
		v = newHabitFormValues()
	}
	return newWizardView(s, s.T("form.new_habit"), habitForm(s.Catalog(), v), func() tea.Cmd {
		return s.createHabit(v)
	})
}

func (s *SharedState) newHabitCmd() tea.Cmd { return pushView(s.newHabitWizard(nil)) }

func (s *SharedState) editHabitCmd(h domain.Habit) tea.Cmd {
	v := habitFormValuesFrom(h)
	return startWizardCmd(s, s.T("form.edit_habit"), habitForm(s.Catalog(), v), func() tea.Cmd {
		return s.updateHabit(h.ID, v)
	})
}

func (s *SharedState) confirmDeleteHabitCmd(h domain.Habit) tea.Cmd {
	var ok bool
	cat := s.Catalog()
	form := wizardConfirm(cat.Tf("confirm.delete_habit", h.Name), cat.T("confirm.yes"), cat.T("confirm.no"), &ok)
	return startWizardCmd(s, s.T("nav.habits"), form, func() tea.Cmd {
		if !ok {
			return nil
		}
		return s.deleteHabit(h.ID)
	})
}
