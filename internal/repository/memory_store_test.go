package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()

	a := testutil.NewTestGoal("A")
	b := testutil.NewTestGoal("B")

	_, err := repo.Insert(ctx, a)
	require.NoError(t, err)
	snap, err := repo.Insert(ctx, b)
	require.NoError(t, err)

	require.Equal(t, 2, snap.Len())
	items := snap.Items()
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "B", items[1].Title)

	last, ok := snap.Last()
	require.True(t, ok)
	assert.Equal(t, b.ID, last.ID)
	assert.Equal(t, uint64(2), snap.Version())
}

func TestMemoryStore_InsertRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	g := testutil.NewTestGoal("Dup")

	_, err := repo.Insert(ctx, g)
	require.NoError(t, err)

	snap, err := repo.Insert(ctx, g)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, snap.Len())
}

func TestMemoryStore_EarlierSnapshotsAreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepo()
	h := testutil.NewTestHabit("Water")

	before, err := repo.Insert(ctx, h)
	require.NoError(t, err)

	after, err := repo.Modify(ctx, h.ID, func(cur domain.Habit) (domain.Habit, error) {
		cur.ToggleDate(testutil.Today)
		cur.Name = "Drink water"
		return cur, nil
	})
	require.NoError(t, err)

	old, ok := before.Get(h.ID)
	require.True(t, ok)
	assert.Equal(t, "Water", old.Name)
	assert.False(t, old.CompletedOn(testutil.Today))

	updated, ok := after.Get(h.ID)
	require.True(t, ok)
	assert.Equal(t, "Drink water", updated.Name)
	assert.True(t, updated.CompletedOn(testutil.Today))
	assert.Greater(t, after.Version(), before.Version())
}

func TestMemoryStore_ItemsAreClones(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepo()
	h := testutil.NewTestHabit("Stretch", testutil.WithCompletedOn(testutil.Today))
	snap, err := repo.Insert(ctx, h)
	require.NoError(t, err)

	items := snap.Items()
	items[0].CompletedDates[0] = testutil.Today.AddDays(-30)
	items[0].Name = "mutated"

	again, _ := repo.Snapshot(ctx).Get(h.ID)
	assert.Equal(t, "Stretch", again.Name)
	assert.Equal(t, []domain.Date{testutil.Today}, again.CompletedDates)
}

func TestMemoryStore_ModifyUnknownIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	_, err := repo.Insert(ctx, testutil.NewTestGoal("Only"))
	require.NoError(t, err)

	called := false
	snap, err := repo.Modify(ctx, 9999, func(g domain.Goal) (domain.Goal, error) {
		called = true
		return g, nil
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, uint64(1), snap.Version())
}

func TestMemoryStore_ModifyNoChangeKeepsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	g := testutil.NewTestGoal("Steady")
	before, err := repo.Insert(ctx, g)
	require.NoError(t, err)

	after, err := repo.Modify(ctx, g.ID, func(domain.Goal) (domain.Goal, error) {
		return domain.Goal{}, ErrNoChange
	})
	require.NoError(t, err)
	assert.Equal(t, before.Version(), after.Version())
}

func TestMemoryStore_ModifyCallbackErrorLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	g := testutil.NewTestGoal("Guarded")
	_, err := repo.Insert(ctx, g)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Modify(ctx, g.ID, func(cur domain.Goal) (domain.Goal, error) {
		cur.Title = "changed"
		return cur, boom
	})
	require.ErrorIs(t, err, boom)

	stored, _ := repo.Snapshot(ctx).Get(g.ID)
	assert.Equal(t, "Guarded", stored.Title)
}

func TestMemoryStore_ModifyCannotChangeID(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	g := testutil.NewTestGoal("Fixed")
	_, err := repo.Insert(ctx, g)
	require.NoError(t, err)

	_, err = repo.Modify(ctx, g.ID, func(cur domain.Goal) (domain.Goal, error) {
		cur.ID++
		return cur, nil
	})
	require.Error(t, err)
	assert.True(t, repo.Snapshot(ctx).Contains(g.ID))
}

func TestMemoryStore_DeleteRemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()
	a := testutil.NewTestGoal("A")
	b := testutil.NewTestGoal("B")
	c := testutil.NewTestGoal("C")
	for _, g := range []domain.Goal{a, b, c} {
		_, err := repo.Insert(ctx, g)
		require.NoError(t, err)
	}

	snap, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())
	items := snap.Items()
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)

	_, err = repo.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewGoalRepo()

	_, err := repo.Insert(ctx, testutil.NewTestGoal("Late"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.Snapshot(context.Background()).Len())
}

func TestSnapshot_ZeroValueIsEmpty(t *testing.T) {
	var snap Snapshot[domain.Goal]
	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, snap.Items())
	_, ok := snap.Last()
	assert.False(t, ok)
	_, ok = snap.Get(1)
	assert.False(t, ok)
}
