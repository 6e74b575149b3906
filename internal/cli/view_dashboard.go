package cli

import (
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardView is the home screen of the TUI. It shows the summary cards,
// today's daily habits (selectable, toggled with space) and the charts.
type dashboardView struct {
	state  *SharedState
	data   stats.Dashboard
	cursor int
}

func newDashboardView(state *SharedState) *dashboardView {
	v := &dashboardView{state: state}
	v.reload()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return v.state.T("nav.dashboard") }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle today")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goals")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "habits")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new goal")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

// reload recomputes the dashboard from the current snapshots. Snapshots are
// in memory so this runs inline instead of as a command.
func (v *dashboardView) reload() {
	ctx := v.state.Ctx
	goals := v.state.App.Goals.Snapshot(ctx).Items()
	habits := v.state.App.Habits.Snapshot(ctx).Items()
	v.data = stats.BuildDashboard(goals, habits, v.state.Now())
	if n := len(v.data.DailyHabits); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.data.DailyHabits)-1 {
				v.cursor++
			}
		case " ", "enter":
			if v.cursor < len(v.data.DailyHabits) {
				cmd := v.state.toggleHabitToday(v.data.DailyHabits[v.cursor].Habit.ID)
				v.reload()
				return v, cmd
			}
		case "g":
			return v, pushView(newGoalListView(v.state))
		case "h":
			return v, pushView(newHabitListView(v.state))
		case "n":
			return v, v.state.newGoalCmd()
		case "r":
			v.reload()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	cat := v.state.Catalog()
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatDashboardCards(v.data, cat))
	b.WriteString("\n\n")

	habits := formatter.FormatDailyHabits(v.data, cat, v.cursor)
	charts := formatter.FormatDashboardCharts(v.data, cat)
	if v.state.Width >= 100 {
		left := lipgloss.NewStyle().Width(v.state.Width / 2).Render(habits)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, charts))
	} else {
		b.WriteString(habits)
		b.WriteString("\n")
		b.WriteString(charts)
	}
	return b.String()
}
