package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/metrics"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// App holds the services and settings the commands drive.
type App struct {
	Goals   service.GoalService
	Habits  service.HabitService
	Suggest suggest.Service
	Catalog *locale.Catalog
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// Addr is the default listen address for serve.
	Addr string
	// Now defaults to time.Now.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// RunTUI runs the interactive program. Tests replace it.
	RunTUI func(ctx context.Context, app *App) error
	// Close releases resources such as log files.
	Close func()
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// Options carries the root flags into Bootstrap.
type Options struct {
	ConfigPath string
	// Locale overrides the configured locale when set.
	Locale string
	Seed   bool
	// Serving is set for the serve command, which logs to stderr.
	Serving bool
}

// Bootstrap builds the App once flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*App, error)

var errNoApp = errors.New("application not initialized")

// NewRootCmd creates the top-level "stride" command. Subcommands share the
// App that bootstrap returns in the persistent pre-run.
func NewRootCmd(bootstrap Bootstrap) *cobra.Command {
	var (
		opts Options
		app  *App
	)
	getApp := func() (*App, error) {
		if app == nil {
			return nil, errNoApp
		}
		return app, nil
	}

	root := &cobra.Command{
		Use:           "stride",
		Short:         "Goal and habit tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.Serving = cmd.Name() == "serve"
			built, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			app = built
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app != nil && app.Close != nil {
				app.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := getApp()
			if err != nil {
				return err
			}
			if !a.interactive() || a.RunTUI == nil {
				return cmd.Help()
			}
			return a.RunTUI(cmd.Context(), a)
		},
	}

	addRootFlags(root.PersistentFlags(), &opts)

	root.AddCommand(
		newServeCmd(getApp),
		newSuggestCmd(getApp),
		newSummaryCmd(getApp),
	)
	return root
}

func addRootFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.Locale, "locale", "", "interface language ("+joinCodes()+")")
	flags.BoolVar(&opts.Seed, "seed", false, "start with sample goals and habits")
}

func joinCodes() string {
	return strings.Join(locale.Codes(), "|")
}
