package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Create_AssignsIDAndTimestamp(t *testing.T) {
	goals, _ := setupServices(t)

	first := createGoal(t, goals, goalInput("  Learn Go  "))
	second := createGoal(t, goals, goalInput("Ship it"))

	assert.Equal(t, "Learn Go", first.Title, "title should be trimmed")
	assert.NotZero(t, first.CreatedAt)
	assert.Greater(t, second.ID, first.ID, "ids come from a monotonic sequence")
	assert.Equal(t, 2, goals.Snapshot(context.Background()).Len())
}

func TestGoalService_Create_Validation(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    domain.GoalInput
		field string
	}{
		{"blank title", domain.GoalInput{Title: "   ", Category: domain.CategoryHealth, DueDate: domain.NewDate(2030, 1, 1)}, "title"},
		{"unknown category", domain.GoalInput{Title: "x", Category: "hobbies", DueDate: domain.NewDate(2030, 1, 1)}, "category"},
		{"missing due date", domain.GoalInput{Title: "x", Category: domain.CategoryHealth}, "dueDate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := goals.Create(ctx, tc.in)
			require.ErrorIs(t, err, domain.ErrValidation)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, 0, snap.Len(), "nothing is stored on validation failure")
		})
	}
}

func TestGoalService_Create_CompletedForcesFullProgress(t *testing.T) {
	goals, _ := setupServices(t)
	in := goalInput("Done already")
	in.IsCompleted = true
	in.Progress = 40

	g := createGoal(t, goals, in)
	assert.True(t, g.IsCompleted)
	assert.Equal(t, 100, g.Progress)
}

func TestGoalService_Create_FullProgressMarksComplete(t *testing.T) {
	goals, _ := setupServices(t)
	in := goalInput("Maxed")
	in.Progress = 100

	g := createGoal(t, goals, in)
	assert.True(t, g.IsCompleted)
}

func TestGoalService_Create_StepTrackedDerivesProgress(t *testing.T) {
	goals, _ := setupServices(t)
	in := goalInput("Chapters")
	in.Steps = domain.StepTracking{Total: 8, Current: 2, Unit: "chapters"}
	in.Progress = 90
	in.IsCompleted = true

	g := createGoal(t, goals, in)
	assert.Equal(t, 25, g.Progress, "steps win over manual progress")
	assert.False(t, g.IsCompleted, "steps win over manual completion")
}

// Scenario: a 12-step goal advanced to its total is complete.
func TestGoalService_AdvanceStep_ToTotalCompletesGoal(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	in := goalInput("Read 12 books")
	in.Steps = domain.StepTracking{Total: 12, Unit: "books"}
	g := createGoal(t, goals, in)
	require.Equal(t, 0, g.Progress)

	snap, err := goals.AdvanceStep(ctx, g.ID, 12)
	require.NoError(t, err)
	got, ok := snap.Get(g.ID)
	require.True(t, ok)
	assert.Equal(t, 100, got.Progress)
	assert.True(t, got.IsCompleted)
}

func TestGoalService_AdvanceStep_InvariantsHoldForAnyInput(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	in := goalInput("Pages")
	in.Steps = domain.StepTracking{Total: 7, Unit: "pages"}
	g := createGoal(t, goals, in)

	for _, n := range []int{-5, 0, 1, 3, 6, 7, 8, 1000} {
		snap, err := goals.AdvanceStep(ctx, g.ID, n)
		require.NoError(t, err)
		got, _ := snap.Get(g.ID)

		assert.GreaterOrEqual(t, got.Steps.Current, 0)
		assert.LessOrEqual(t, got.Steps.Current, got.Steps.Total)
		want := int(float64(got.Steps.Current)/float64(got.Steps.Total)*100 + 0.5)
		assert.Equal(t, want, got.Progress, "step %d", n)
		assert.Equal(t, got.Steps.Current == got.Steps.Total, got.IsCompleted, "step %d", n)
	}
}

func TestGoalService_AdvanceStep_PercentageGoalIsNoOp(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	in := goalInput("Percent")
	in.Progress = 30
	g := createGoal(t, goals, in)
	before := goals.Snapshot(ctx)

	after, err := goals.AdvanceStep(ctx, g.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, before.Version(), after.Version())
	got, _ := after.Get(g.ID)
	assert.Equal(t, 30, got.Progress)
}

func TestGoalService_AdvanceStep_UnknownID(t *testing.T) {
	goals, _ := setupServices(t)
	_, err := goals.AdvanceStep(context.Background(), 404, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Round-trip: updating with the record's own values changes nothing observable.
func TestGoalService_Update_SameValuesRoundTrip(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	in := goalInput("Stable")
	in.Description = "keep me"
	in.Progress = 42
	g := createGoal(t, goals, in)

	snap, err := goals.Update(ctx, g.ID, domain.GoalPatch{
		Title:       ptr(g.Title),
		Description: ptr(g.Description),
		Category:    ptr(g.Category),
		DueDate:     ptr(g.DueDate),
		IsCompleted: ptr(g.IsCompleted),
		Progress:    ptr(g.Progress),
	})
	require.NoError(t, err)
	got, _ := snap.Get(g.ID)
	assert.Equal(t, g, got)
}

func TestGoalService_Update_OnlyTouchesPatchedFields(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	g := createGoal(t, goals, goalInput("Before"))

	snap, err := goals.Update(ctx, g.ID, domain.GoalPatch{Title: ptr("After"), Category: ptr(domain.CategoryFinancial)})
	require.NoError(t, err)
	got, _ := snap.Get(g.ID)

	assert.Equal(t, "After", got.Title)
	assert.Equal(t, domain.CategoryFinancial, got.Category)
	assert.Equal(t, g.DueDate, got.DueDate)
	assert.Equal(t, g.CreatedAt, got.CreatedAt)
	assert.Equal(t, g.ID, got.ID)
}

// Scenario: updating an unknown id reports ErrNotFound and alters nothing.
func TestGoalService_Update_UnknownIDLeavesRecordsAlone(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	g := createGoal(t, goals, goalInput("Existing"))
	before := goals.Snapshot(ctx)

	snap, err := goals.Update(ctx, g.ID+100, domain.GoalPatch{Title: ptr("Hijacked")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before.Version(), snap.Version())
	got, _ := goals.Snapshot(ctx).Get(g.ID)
	assert.Equal(t, "Existing", got.Title)
}

func TestGoalService_Update_InvalidMergeIsRejected(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	g := createGoal(t, goals, goalInput("Named"))

	_, err := goals.Update(ctx, g.ID, domain.GoalPatch{Title: ptr("  ")})
	require.ErrorIs(t, err, domain.ErrValidation)
	got, _ := goals.Snapshot(ctx).Get(g.ID)
	assert.Equal(t, "Named", got.Title)
}

// The reopen value is a policy knob, not a law: 100% goals unchecked by the
// user fall to ReopenProgress.
func TestGoalService_Update_ReopenPolicy(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name   string
		policy GoalPolicy
		want   int
	}{
		{"default", DefaultGoalPolicy(), 99},
		{"custom", GoalPolicy{ReopenProgress: 50}, 50},
		{"clamped", GoalPolicy{ReopenProgress: 150}, 99},
	} {
		t.Run(tc.name, func(t *testing.T) {
			goals := NewGoalService(repository.NewGoalRepo(), repository.NewMemorySequence(), tc.policy)
			in := goalInput("Done")
			in.IsCompleted = true
			g := createGoal(t, goals, in)

			snap, err := goals.Update(ctx, g.ID, domain.GoalPatch{IsCompleted: ptr(false)})
			require.NoError(t, err)
			got, _ := snap.Get(g.ID)
			assert.False(t, got.IsCompleted)
			assert.Equal(t, tc.want, got.Progress)
		})
	}
}

func TestGoalService_Update_LowerProgressReopens(t *testing.T) {
	ctx := context.Background()
	goals, _ := setupServices(t)
	in := goalInput("Done")
	in.IsCompleted = true
	g := createGoal(t, goals, in)

	snap, err := goals.Update(ctx, g.ID, domain.GoalPatch{Progress: ptr(50)})
	require.NoError(t, err)
	got, _ := snap.Get(g.ID)
	assert.False(t, got.IsCompleted)
	assert.Equal(t, 50, got.Progress, "the lowered value is kept, not the reopen policy value")

	// An explicit completion in the same patch still wins.
	snap, err = goals.Update(ctx, g.ID, domain.GoalPatch{Progress: ptr(30), IsCompleted: ptr(true)})
	require.NoError(t, err)
	got, _ = snap.Get(g.ID)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, 100, got.Progress)
}

func TestGoalService_Update_ClearSteps(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	in := goalInput("Stepped")
	in.Steps = domain.StepTracking{Total: 4, Current: 1}
	g := createGoal(t, goals, in)

	snap, err := goals.Update(ctx, g.ID, domain.GoalPatch{ClearSteps: true, Progress: ptr(60)})
	require.NoError(t, err)
	got, _ := snap.Get(g.ID)
	assert.False(t, got.IsStepTracked())
	assert.Equal(t, 60, got.Progress)

	snap, err = goals.Update(ctx, g.ID, domain.GoalPatch{Steps: &domain.StepTracking{Total: 0, Current: 3}})
	require.NoError(t, err)
	got, _ = snap.Get(g.ID)
	assert.Equal(t, domain.StepTracking{}, got.Steps, "a non-positive total clears the steps")
}

// Deletion removes exactly one record and leaves the others untouched.
func TestGoalService_Delete(t *testing.T) {
	goals, _ := setupServices(t)
	ctx := context.Background()
	a := createGoal(t, goals, goalInput("A"))
	b := createGoal(t, goals, goalInput("B"))
	c := createGoal(t, goals, goalInput("C"))

	snap, err := goals.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, snap.Contains(b.ID))
	gotA, _ := snap.Get(a.ID)
	gotC, _ := snap.Get(c.ID)
	assert.Equal(t, a, gotA)
	assert.Equal(t, c, gotC)
	assert.False(t, goals.Snapshot(ctx).Contains(b.ID))

	_, err = goals.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoalService_Create_SequenceFailure(t *testing.T) {
	boom := errors.New("sequence exhausted")
	seq := &testutil.FailOnNthSequence{Seq: repository.NewMemorySequence(), FailOn: 2, Err: boom}
	goals := NewGoalService(repository.NewGoalRepo(), seq, DefaultGoalPolicy())
	ctx := context.Background()

	_, err := goals.Create(ctx, goalInput("first"))
	require.NoError(t, err)
	snap, err := goals.Create(ctx, goalInput("second"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, snap.Len())
}

func TestGoalService_ObservesUseCases(t *testing.T) {
	rec := &recordingObserver{}
	goals, _ := setupServices(t, nil, rec)
	ctx := context.Background()

	g := createGoal(t, goals, goalInput("Observed"))
	_, _ = goals.Update(ctx, g.ID, domain.GoalPatch{Title: ptr("Renamed")})
	_, _ = goals.Delete(ctx, 999)

	assert.Equal(t, []string{"create-goal", "update-goal", "delete-goal"}, rec.names())
	last := rec.events[2]
	assert.False(t, last.Success)
	assert.ErrorIs(t, last.Err, domain.ErrNotFound)
	assert.Equal(t, int64(999), last.Fields["goal_id"])
}
