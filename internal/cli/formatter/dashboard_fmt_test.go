package formatter

import (
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/stats"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/alexanderramin/stride/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBarChart(t *testing.T) {
	got := stripANSI(BarChart([]BarRow{
		{Label: "Done", Value: 4, Style: StyleGreen},
		{Label: "Pending", Value: 2, Style: StyleYellow},
	}, 8))
	assert.Equal(t, "  Done     ████████ 4\n  Pending  ████ 2\n", got)
}

func TestFormatDashboard(t *testing.T) {
	en := locale.MustLoad("en")
	goals := []domain.Goal{
		testutil.NewTestGoal("a", testutil.WithCategory(domain.CategoryHealth), testutil.WithCompleted()),
		testutil.NewTestGoal("b", testutil.WithCategory(domain.CategoryCareer), testutil.WithDueInDays(-2)),
	}
	habits := []domain.Habit{
		testutil.NewTestHabit("Drink water", testutil.WithCompletedOn(testutil.Today)),
		testutil.NewTestHabit("Review budget", testutil.WithFrequency(domain.FrequencyMonthly)),
	}
	d := stats.BuildDashboard(goals, habits, testutil.FixedNow)

	got := stripANSI(FormatDashboard(d, en))
	assert.Contains(t, got, "Total goals")
	assert.Contains(t, got, "Today's habits")
	assert.Contains(t, got, "✔ Drink water")
	assert.NotContains(t, got, "○ Review budget")
	assert.Contains(t, got, "Goals by category")
	assert.Contains(t, got, "Health")
	assert.Contains(t, got, "Habit completions")
}

func TestFormatDailyHabits_Empty(t *testing.T) {
	en := locale.MustLoad("en")
	d := stats.BuildDashboard(nil, nil, testutil.FixedNow)
	assert.Contains(t, stripANSI(FormatDailyHabits(d, en, 0)), "No daily habits yet.")
}

func TestFormatSuggestions(t *testing.T) {
	en := locale.MustLoad("en")
	items := []suggest.Suggestion{
		{Title: "Walk", Description: "Walk daily"},
		{Title: "Stretch", Description: "Five minutes"},
	}
	got := stripANSI(FormatSuggestions(items, en, 1))
	assert.Contains(t, got, "  1. Walk")
	assert.Contains(t, got, "▸ 2. Stretch")
	assert.Contains(t, got, "Five minutes")

	assert.Contains(t, stripANSI(FormatSuggestions(nil, en, -1)), "No suggestions.")
	assert.Contains(t, stripANSI(SuggestionNotice(en)), "unavailable")
}
