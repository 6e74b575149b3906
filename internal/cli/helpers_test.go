package cli

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSuggest answers every request with items or err and records the
// contexts it was called with.
type stubSuggest struct {
	mu    sync.Mutex
	items []suggest.Suggestion
	err   error
	// block, when set, makes calls wait until ctx is canceled.
	block bool
	calls []context.Context
	cats  []domain.Category
	freqs []domain.Frequency
}

func (s *stubSuggest) answer(ctx context.Context) ([]suggest.Suggestion, error) {
	s.mu.Lock()
	s.calls = append(s.calls, ctx)
	s.mu.Unlock()
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.items, s.err
}

func (s *stubSuggest) ForCategory(ctx context.Context, c domain.Category) ([]suggest.Suggestion, error) {
	s.mu.Lock()
	s.cats = append(s.cats, c)
	s.mu.Unlock()
	return s.answer(ctx)
}

func (s *stubSuggest) ForFrequency(ctx context.Context, f domain.Frequency) ([]suggest.Suggestion, error) {
	s.mu.Lock()
	s.freqs = append(s.freqs, f)
	s.mu.Unlock()
	return s.answer(ctx)
}

func (s *stubSuggest) lastCall() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

// testApp wires a full App over in-memory stores with a fixed clock.
func testApp(t *testing.T, sugg suggest.Service) *App {
	t.Helper()
	if sugg == nil {
		sugg = &stubSuggest{}
	}
	seq := repository.NewMemorySequence()
	return &App{
		Goals:   service.NewGoalService(repository.NewGoalRepo(), seq, service.DefaultGoalPolicy()),
		Habits:  service.NewHabitService(repository.NewHabitRepo(), seq),
		Suggest: sugg,
		Catalog: locale.MustLoad("en"),
		Logger:  zap.NewNop(),
		Addr:    "127.0.0.1:0",
		Now:     testutil.FixedClock(testutil.FixedNow),
	}
}

func addGoal(t *testing.T, app *App, in domain.GoalInput) domain.Goal {
	t.Helper()
	snap, err := app.Goals.Create(context.Background(), in)
	require.NoError(t, err)
	g, ok := snap.Last()
	require.True(t, ok)
	return g
}

func addHabit(t *testing.T, app *App, in domain.HabitInput) domain.Habit {
	t.Helper()
	snap, err := app.Habits.Create(context.Background(), in)
	require.NoError(t, err)
	h, ok := snap.Last()
	require.True(t, ok)
	return h
}

func goalIn(title string) domain.GoalInput {
	return domain.GoalInput{
		Title:    title,
		Category: domain.CategoryHealth,
		DueDate:  testutil.Today.AddDays(5),
	}
}

func habitIn(name string, f domain.Frequency) domain.HabitInput {
	return domain.HabitInput{Name: name, Frequency: f}
}

func goalByID(t *testing.T, app *App, id domain.ID) domain.Goal {
	t.Helper()
	g, ok := app.Goals.Snapshot(context.Background()).Get(id)
	require.True(t, ok)
	return g
}

func habitByID(t *testing.T, app *App, id domain.ID) domain.Habit {
	t.Helper()
	h, ok := app.Habits.Snapshot(context.Background()).Get(id)
	require.True(t, ok)
	return h
}
