package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

type replaceViewMsg struct {
	view View
}

// resetViewMsg drops everything above the dashboard and pushes view, if any.
type resetViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its snapshot.
type refreshViewMsg struct{}

// flashMsg shows a one-line notice in the status bar until the next key.
type flashMsg struct {
	text string
	err  bool
}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func resetView(v View) tea.Cmd {
	return func() tea.Msg { return resetViewMsg{view: v} }
}

func refresh() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

func flashError(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text, err: true} }
}
