package cli

import (
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoalFormValues_Defaults(t *testing.T) {
	v := newGoalFormValues(testutil.Today)
	assert.Equal(t, domain.CategoryPersonal, v.Category)
	assert.Equal(t, "2025-03-17", v.DueDate)
	assert.Equal(t, "0", v.Progress)
}

func TestGoalFormValues_Input(t *testing.T) {
	v := newGoalFormValues(testutil.Today)
	v.Title = "Read"
	v.TotalSteps = "10"
	v.CurrentStep = "3"
	v.StepUnit = " books "

	in, err := v.input()
	require.NoError(t, err)
	assert.Equal(t, "Read", in.Title)
	assert.Equal(t, testutil.Today.AddDays(defaultDueDays), in.DueDate)
	assert.Equal(t, domain.StepTracking{Total: 10, Current: 3, Unit: "books"}, in.Steps)
}

func TestGoalFormValues_InputRejectsBadDate(t *testing.T) {
	v := newGoalFormValues(testutil.Today)
	v.DueDate = "next week"

	_, err := v.input()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dueDate", verr.Field)
}

func TestGoalFormValues_PatchKeepsUntouchedCompletion(t *testing.T) {
	g := testutil.NewTestGoal("Done", testutil.WithCompleted())
	v := goalFormValuesFrom(g)
	v.Title = "Done and dusted"

	p, err := v.patch(g)
	require.NoError(t, err)
	assert.Nil(t, p.IsCompleted)
	assert.False(t, p.Reopens())
	assert.Equal(t, "Done and dusted", *p.Title)
	assert.True(t, p.ClearSteps)

	v.Completed = false
	p, err = v.patch(g)
	require.NoError(t, err)
	assert.True(t, p.Reopens())
}

func TestGoalFormValues_RoundTripsSteps(t *testing.T) {
	g := testutil.NewTestGoal("Run", testutil.WithSteps(2, 5, "km"))
	v := goalFormValuesFrom(g)
	assert.Equal(t, "5", v.TotalSteps)
	assert.Equal(t, "2", v.CurrentStep)

	p, err := v.patch(g)
	require.NoError(t, err)
	require.NotNil(t, p.Steps)
	assert.Equal(t, g.Steps, *p.Steps)
	assert.False(t, p.ClearSteps)
}

func TestHabitFormValues_PreferredTime(t *testing.T) {
	h := testutil.NewTestHabit("Walk", testutil.WithPreferredTime(6, 45))
	v := habitFormValuesFrom(h)
	assert.Equal(t, "06:45", v.PreferredTime)

	in, err := v.input()
	require.NoError(t, err)
	require.NotNil(t, in.PreferredTime)
	assert.Equal(t, domain.TimeOfDay{Hour: 6, Minute: 45}, *in.PreferredTime)

	v.PreferredTime = ""
	p, err := v.patch()
	require.NoError(t, err)
	assert.True(t, p.ClearPreferredTime)
	assert.Nil(t, p.PreferredTime)

	v.PreferredTime = "25:00"
	_, err = v.patch()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidators(t *testing.T) {
	assert.Error(t, validateRequired("Title")("  "))
	assert.NoError(t, validateRequired("Title")("x"))
	assert.NoError(t, validateDate("2025-01-31"))
	assert.Error(t, validateDate("31/01/2025"))
	assert.NoError(t, validateOptionalTime(""))
	assert.Error(t, validateOptionalTime("7pm"))
	assert.NoError(t, validateIntRange(0, 100)(""))
	assert.Error(t, validateIntRange(0, 100)("101"))
	assert.Equal(t, 4, parseIntOr(" 4 ", 0))
	assert.Equal(t, 9, parseIntOr("x", 9))
}
