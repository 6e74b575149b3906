package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const maxFormWidth = 80

// wizardView wraps a huh.Form as a View on the navigation stack.
// When the form completes it sends a wizardCompleteMsg carrying the
// done callback's result.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	if state.Width > 0 {
		form = form.WithWidth(min(state.Width, maxFormWidth))
	}
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form without saving.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return wizardCompleteMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		return v, v.complete(cmd)
	case huh.StateAborted:
		return v, func() tea.Msg { return wizardCompleteMsg{} }
	}
	return v, cmd
}

// complete runs the done callback and asks the app model to pop the form.
func (v *wizardView) complete(cmd tea.Cmd) tea.Cmd {
	var doneCmd tea.Cmd
	if v.done != nil {
		doneCmd = v.done()
	}
	return func() tea.Msg {
		return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
	}
}

func (v *wizardView) View() string {
	return "\n" + v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// startWizardCmd pushes a wizardView for form.
func startWizardCmd(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) tea.Cmd {
	return pushView(newWizardView(state, title, form, done))
}
