package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// suggestionView asks the assistant for ideas for one category (goals) or
// frequency (habits). Picking one opens the matching form prefilled.
type suggestionView struct {
	state *SharedState
	goals bool

	// choice indexes domain.Categories or domain.Frequencies.
	choice int
	cursor int
	panel  suggestionPanel
	spin   spinner.Model
}

func newGoalSuggestionView(state *SharedState) *suggestionView {
	return newSuggestionView(state, true)
}

func newHabitSuggestionView(state *SharedState) *suggestionView {
	return newSuggestionView(state, false)
}

func newSuggestionView(state *SharedState, goals bool) *suggestionView {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = formatter.StylePurple
	return &suggestionView{state: state, goals: goals, spin: s}
}

func (v *suggestionView) ID() ViewID { return ViewSuggestions }

func (v *suggestionView) Title() string { return v.state.T("suggest.title") }

func (v *suggestionView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", v.choiceHelp())),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ask again")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write my own")),
	}
}

func (v *suggestionView) choiceHelp() string {
	if v.goals {
		return "category"
	}
	return "frequency"
}

func (v *suggestionView) Init() tea.Cmd { return v.fetch() }

// Close cancels any request still in flight.
func (v *suggestionView) Close() { v.panel.Close() }

func (v *suggestionView) category() domain.Category { return domain.Categories[v.choice] }

func (v *suggestionView) frequency() domain.Frequency { return domain.Frequencies[v.choice] }

func (v *suggestionView) choices() int {
	if v.goals {
		return len(domain.Categories)
	}
	return len(domain.Frequencies)
}

func (v *suggestionView) fetch() tea.Cmd {
	svc := v.state.App.Suggest
	var fetch fetchFunc
	if v.goals {
		c := v.category()
		fetch = func(ctx context.Context) ([]suggest.Suggestion, error) { return svc.ForCategory(ctx, c) }
	} else {
		f := v.frequency()
		fetch = func(ctx context.Context) ([]suggest.Suggestion, error) { return svc.ForFrequency(ctx, f) }
	}
	v.cursor = 0
	return tea.Batch(v.panel.start(v.state.Ctx, fetch), v.spin.Tick)
}

func (v *suggestionView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionsMsg:
		v.panel.handle(msg)
		return v, nil

	case spinner.TickMsg:
		if !v.panel.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			v.choice = (v.choice + v.choices() - 1) % v.choices()
			v.panel.clear()
		case "right":
			v.choice = (v.choice + 1) % v.choices()
			v.panel.clear()
		case "s":
			return v, v.fetch()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.panel.items)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.panel.items) {
				return v, v.openForm(&v.panel.items[v.cursor])
			}
		case "w":
			return v, v.openForm(nil)
		}
	}
	return v, nil
}

// openForm swaps this view for a creation form, prefilled from s when one
// was picked.
func (v *suggestionView) openForm(s *suggest.Suggestion) tea.Cmd {
	v.panel.Close()
	if v.goals {
		values := newGoalFormValues(v.state.Today())
		values.Category = v.category()
		if s != nil {
			values.Title, values.Description = s.Title, s.Description
		}
		return replaceView(v.state.newGoalWizard(values))
	}
	values := newHabitFormValues()
	values.Frequency = v.frequency()
	if s != nil {
		values.Name = s.Title
	}
	return replaceView(v.state.newHabitWizard(values))
}

func (v *suggestionView) View() string {
	cat := v.state.Catalog()
	var b strings.Builder
	b.WriteString("\n")

	var label string
	if v.goals {
		label = cat.T("form.category") + ": " + formatter.CategoryStyle(v.category()).Render(cat.CategoryLabel(v.category()))
	} else {
		label = cat.T("form.frequency") + ": " + formatter.StyleBlue.Render(cat.FrequencyLabel(v.frequency()))
	}
	b.WriteString("  " + formatter.Dim("‹ ") + label + formatter.Dim(" ›") + "\n\n")

	switch {
	case v.panel.loading:
		b.WriteString("  " + v.spin.View() + " " + cat.T("suggest.loading") + "\n")
	case v.panel.err != nil:
		b.WriteString("  " + formatter.SuggestionNotice(cat) + "\n")
	case v.panel.tag == "":
		b.WriteString("  " + formatter.Dim(cat.T("suggest.hint")) + "\n")
	default:
		b.WriteString(formatter.FormatSuggestions(v.panel.items, cat, v.cursor))
	}
	return b.String()
}
