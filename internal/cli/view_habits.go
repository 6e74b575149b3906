package cli

import (
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// habitListView lists every habit with today's completion mark.
type habitListView struct {
	state  *SharedState
	habits []domain.Habit
	cursor int
	offset int
}

func newHabitListView(state *SharedState) *habitListView {
	v := &habitListView{state: state}
	v.reload()
	return v
}

func (v *habitListView) ID() ViewID    { return ViewHabitList }
func (v *habitListView) Title() string { return v.state.T("nav.habits") }

func (v *habitListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "suggest")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle today")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (v *habitListView) Init() tea.Cmd { return nil }

func (v *habitListView) reload() {
	v.habits = v.state.App.Habits.Snapshot(v.state.Ctx).Items()
	if v.cursor >= len(v.habits) {
		v.cursor = max(len(v.habits)-1, 0)
	}
}

func (v *habitListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return v, nil
		case "down", "j":
			if v.cursor < len(v.habits)-1 {
				v.cursor++
			}
			return v, nil
		case "n":
			return v, v.state.newHabitCmd()
		case "s":
			return v, pushView(newHabitSuggestionView(v.state))
		}

		if v.cursor >= len(v.habits) {
			return v, nil
		}
		h := v.habits[v.cursor]
		switch msg.String() {
		case " ":
			cmd := v.state.toggleHabitToday(h.ID)
			v.reload()
			return v, cmd
		case "e", "enter":
			return v, v.state.editHabitCmd(h)
		case "d":
			return v, v.state.confirmDeleteHabitCmd(h)
		}
	}
	return v, nil
}

func (v *habitListView) View() string {
	cat := v.state.Catalog()
	if len(v.habits) == 0 {
		return "\n  " + formatter.Dim(cat.T("habits.empty")) + "\n"
	}

	visible := max(v.state.ContentHeight()-1, 1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
	end := min(v.offset+visible, len(v.habits))

	var b strings.Builder
	b.WriteString("\n")
	today := v.state.Today()
	for i := v.offset; i < end; i++ {
		b.WriteString(formatter.FormatHabitLine(v.habits[i], today, cat, i == v.cursor))
	}
	return b.String()
}
