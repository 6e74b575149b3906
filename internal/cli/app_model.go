package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// globalKeys apply on every view except forms, which take every key but
// ctrl+c.
var globalKeys = struct {
	Interrupt, Quit, Back, Dashboard, Goals, Habits key.Binding
}{
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "views")),
	Goals:     key.NewBinding(key.WithKeys("2")),
	Habits:    key.NewBinding(key.WithKeys("3")),
}

// appModel is the root bubbletea model. It routes navigation messages to the
// view stack and draws the header and status bar around the top view.
type appModel struct {
	state    *SharedState
	stack    viewStack
	quitting bool

	// Notice from the last action, cleared by the next key.
	flash    string
	flashErr bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	state := &SharedState{App: app, Ctx: ctx}
	return appModel{state: state, stack: viewStack{newDashboardView(state)}}
}

func (m appModel) Init() tea.Cmd {
	return m.stack.top().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.stack = m.stack.push(msg.view)
		return m, msg.view.Init()

	case replaceViewMsg:
		m.stack = m.stack.replace(msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		m.stack = m.stack.pop()
		return m, tea.Batch(msg.nextCmd, refresh())

	case resetViewMsg:
		m.stack = m.stack.unwind()
		if msg.view == nil {
			return m, refresh()
		}
		m.stack = m.stack.push(msg.view)
		return m, tea.Batch(refresh(), msg.view.Init())

	case refreshViewMsg:
		// Views below a form reload too, so returning to them shows the
		// form's mutation.
		cmds := make([]tea.Cmd, 0, len(m.stack))
		for i, v := range m.stack {
			updated, cmd := v.Update(msg)
			m.stack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case flashMsg:
		m.flash, m.flashErr = msg.text, msg.err
		return m, nil
	}
	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.stack.top().Update(msg)
	m.stack.setTop(updated.(View))
	return m, cmd
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stack.closeAll()
	return m, tea.Quit
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.Interrupt) {
		return m.quit()
	}
	m.flash = ""

	if capturesInput(m.stack.top()) {
		return m.forward(msg)
	}
	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.quit()
	case key.Matches(msg, globalKeys.Dashboard):
		return m, resetView(nil)
	case key.Matches(msg, globalKeys.Goals):
		return m, resetView(newGoalListView(m.state))
	case key.Matches(msg, globalKeys.Habits):
		return m, resetView(newHabitListView(m.state))
	case key.Matches(msg, globalKeys.Back):
		if len(m.stack) == 1 {
			return m, nil
		}
		m.stack = m.stack.pop()
		return m, refresh()
	}
	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	out := strings.Join([]string{m.header(), m.stack.top().View(), m.statusBar()}, "\n")

	// Fill the screen so the alt-screen renderer never leaves stale rows.
	if lines := strings.Count(out, "\n") + 1; lines < m.state.Height {
		out += strings.Repeat("\n", m.state.Height-lines)
	}
	return out
}

func (m appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

// header shows the app title, a breadcrumb of open views and today's date.
func (m appModel) header() string {
	var crumbs strings.Builder
	for _, v := range m.stack {
		if t := v.Title(); t != "" {
			crumbs.WriteString(" › " + t)
		}
	}
	title := formatter.StylePurple.Render(m.state.T("app.title"))
	return title + formatter.Dim(crumbs.String()) + "  " + formatter.Dim(m.state.Today().String()) + "\n" + m.rule()
}

func (m appModel) statusBar() string {
	bindings := m.stack.top().ShortHelp()
	if !capturesInput(m.stack.top()) {
		if len(m.stack) > 1 {
			bindings = append(bindings, globalKeys.Back)
		}
		bindings = append(bindings, globalKeys.Dashboard, globalKeys.Quit)
	}

	hints := make([]string, 0, len(bindings)+1)
	if m.flash != "" {
		style := formatter.StyleGreen
		if m.flashErr {
			style = formatter.StyleRed
		}
		hints = append(hints, style.Render(m.flash))
	}
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}

// capturesInput reports whether v owns the keyboard, bypassing globalKeys.
func capturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}
