package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the full-screen program until the user quits.
func RunTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
