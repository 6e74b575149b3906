package cli

import (
	"fmt"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/stats"
	"github.com/spf13/cobra"
)

func newSummaryCmd(getApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard and goal list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := getApp()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			now := app.now()
			goals := app.Goals.Snapshot(ctx).Items()
			d := stats.BuildDashboard(goals, app.Habits.Snapshot(ctx).Items(), now)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatDashboard(d, app.Catalog))
			if len(goals) > 0 {
				fmt.Fprintln(out, formatter.Header(app.Catalog.T("nav.goals")))
				fmt.Fprint(out, formatter.FormatGoalTable(goals, now, app.Catalog))
			}
			return nil
		},
	}
}
