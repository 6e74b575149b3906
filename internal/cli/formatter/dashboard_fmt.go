package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const chartWidth = 24

// BarRow is one labelled bar of a text chart.
type BarRow struct {
	Label string
	Value int
	Style lipgloss.Style
}

// BarChart renders rows as horizontal bars scaled to the largest value.
func BarChart(rows []BarRow, width int) string {
	labelWidth, top := 0, 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
		top = max(top, r.Value)
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s  %s %d\n",
			PadRight(r.Label, labelWidth),
			r.Style.Render(RenderBar(r.Value, top, width)),
			r.Value)
	}
	return b.String()
}

// FormatDashboardCards renders the goal total, completed and pending cards
// side by side, plus the overdue count.
func FormatDashboardCards(d stats.Dashboard, cat *locale.Catalog) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Card(cat.T("dash.total"), strconv.Itoa(d.Goals.Total), StyleBlue), " ",
		Card(cat.T("dash.completed"), strconv.Itoa(d.Goals.Completed), StyleGreen), " ",
		Card(cat.T("dash.pending"), strconv.Itoa(d.Goals.Pending), StyleYellow), " ",
		Card(cat.T("dash.overdue"), strconv.Itoa(d.OverdueCount), StyleRed), " ",
		Card(cat.T("dash.habits"), strconv.Itoa(d.HabitCount), StylePurple),
	)
}

// FormatDailyHabits lists today's daily habits; cursor < 0 hides the cursor.
func FormatDailyHabits(d stats.Dashboard, cat *locale.Catalog, cursor int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(cat.T("dash.today")) + "\n")
	if len(d.DailyHabits) == 0 {
		b.WriteString("  " + Dim(cat.T("dash.no_daily")) + "\n")
		return b.String()
	}
	for i, dh := range d.DailyHabits {
		b.WriteString(FormatHabitLine(dh.Habit, d.Today, cat, i == cursor))
	}
	return b.String()
}

// FormatDashboardCharts renders the goal status split, the category histogram
// and per-habit completion totals.
func FormatDashboardCharts(d stats.Dashboard, cat *locale.Catalog) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(cat.T("dash.goal_status")) + "\n")
	b.WriteString(BarChart([]BarRow{
		{Label: cat.T("dash.completed"), Value: d.Goals.Completed, Style: StyleGreen},
		{Label: cat.T("dash.pending"), Value: d.Goals.Pending, Style: StyleYellow},
	}, chartWidth))

	if len(d.Categories) > 0 {
		b.WriteString("\n" + StyleHeader.Render(cat.T("dash.categories")) + "\n")
		rows := make([]BarRow, 0, len(d.Categories))
		for _, c := range d.Categories {
			rows = append(rows, BarRow{Label: cat.CategoryLabel(c.Category), Value: c.Count, Style: CategoryStyle(c.Category)})
		}
		b.WriteString(BarChart(rows, chartWidth))
	}

	if len(d.HabitCompletions) > 0 {
		b.WriteString("\n" + StyleHeader.Render(cat.T("dash.habit_completions")) + "\n")
		rows := make([]BarRow, 0, len(d.HabitCompletions))
		for _, hc := range d.HabitCompletions {
			rows = append(rows, BarRow{Label: Truncate(hc.Name, 24), Value: hc.Count, Style: StylePurple})
		}
		b.WriteString(BarChart(rows, chartWidth))
	}
	return b.String()
}

// FormatDashboard is the full plain dashboard, used by the summary command.
func FormatDashboard(d stats.Dashboard, cat *locale.Catalog) string {
	return strings.Join([]string{
		FormatDashboardCards(d, cat),
		FormatDailyHabits(d, cat, -1),
		FormatDashboardCharts(d, cat),
	}, "\n")
}
