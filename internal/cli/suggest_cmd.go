package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSuggestCmd(getApp func() (*App, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the assistant for goal or habit ideas",
	}
	cmd.AddCommand(newSuggestGoalsCmd(getApp), newSuggestHabitsCmd(getApp))
	return cmd
}

func newSuggestGoalsCmd(getApp func() (*App, error)) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Suggest goals for a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := getApp()
			if err != nil {
				return err
			}
			c, err := locale.ParseCategory(category)
			if err != nil {
				return err
			}
			return printSuggestions(cmd, app, func(ctx context.Context) ([]suggest.Suggestion, error) {
				return app.Suggest.ForCategory(ctx, c)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", string(domain.CategoryPersonal), "goal category")
	return cmd
}

func newSuggestHabitsCmd(getApp func() (*App, error)) *cobra.Command {
	var frequency string

	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Suggest habits for a frequency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := getApp()
			if err != nil {
				return err
			}
			f, err := locale.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			return printSuggestions(cmd, app, func(ctx context.Context) ([]suggest.Suggestion, error) {
				return app.Suggest.ForFrequency(ctx, f)
			})
		},
	}

	cmd.Flags().StringVar(&frequency, "frequency", string(domain.FrequencyDaily), "habit frequency")
	return cmd
}

// printSuggestions prints the results, or the unavailable notice. A failed
// lookup is not a command error.
func printSuggestions(cmd *cobra.Command, app *App, fetch func(context.Context) ([]suggest.Suggestion, error)) error {
	out := cmd.OutOrStdout()
	var stop func()
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), app.Catalog.T("suggest.loading"))
	}
	items, err := fetch(cmd.Context())
	if stop != nil {
		stop()
	}
	if err != nil {
		if app.Logger != nil {
			app.Logger.Warn("suggestions_unavailable", zap.Error(err))
		}
		fmt.Fprintln(out, formatter.SuggestionNotice(app.Catalog))
		return nil
	}
	fmt.Fprint(out, formatter.FormatSuggestions(items, app.Catalog, -1))
	return nil
}
