package cli

import (
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// goalListView lists goals as cards in store order with a movable cursor.
type goalListView struct {
	state  *SharedState
	goals  []domain.Goal
	cursor int
	offset int
}

func newGoalListView(state *SharedState) *goalListView {
	v := &goalListView{state: state}
	v.reload()
	return v
}

func (v *goalListView) ID() ViewID    { return ViewGoalList }
func (v *goalListView) Title() string { return v.state.T("nav.goals") }

func (v *goalListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "suggest")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "step")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
	}
}

func (v *goalListView) Init() tea.Cmd { return nil }

func (v *goalListView) reload() {
	v.goals = v.state.App.Goals.Snapshot(v.state.Ctx).Items()
	if v.cursor >= len(v.goals) {
		v.cursor = max(len(v.goals)-1, 0)
	}
}

func (v *goalListView) selected() (domain.Goal, bool) {
	if v.cursor < len(v.goals) {
		return v.goals[v.cursor], true
	}
	return domain.Goal{}, false
}

func (v *goalListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if v.cursor < len(v.goals)-1 {
				v.cursor++
			}
			return v, nil
		case "n":
			return v, v.state.newGoalCmd()
		case "s":
			return v, pushView(newGoalSuggestionView(v.state))
		}

		g, ok := v.selected()
		if !ok {
			return v, nil
		}
		switch msg.String() {
		case "e", "enter":
			return v, v.state.editGoalCmd(g)
		case "d":
			return v, v.state.confirmDeleteGoalCmd(g)
		case "+", "right":
			cmd := v.state.advanceStep(g, 1)
			v.reload()
			return v, cmd
		case "-", "left":
			cmd := v.state.advanceStep(g, -1)
			v.reload()
			return v, cmd
		case "c":
			cmd := v.state.toggleGoalDone(g)
			v.reload()
			return v, cmd
		}
	}
	return v, nil
}

// cardLines is the rendered height of one goal card.
const cardLines = 3

func (v *goalListView) View() string {
	cat := v.state.Catalog()
	if len(v.goals) == 0 {
		return "\n  " + formatter.Dim(cat.T("goals.empty")) + "\n"
	}

	visible := max(v.state.ContentHeight()/cardLines, 1)
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
	end := min(v.offset+visible, len(v.goals))

	var b strings.Builder
	b.WriteString("\n")
	now := v.state.Now()
	for i := v.offset; i < end; i++ {
		b.WriteString(formatter.FormatGoalCard(v.goals[i], now, cat, i == v.cursor))
	}
	return b.String()
}
