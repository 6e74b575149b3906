package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/stride/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(getApp func() (*App, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the goal and habit API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := getApp()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = app.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := httpapi.New(httpapi.Deps{
				Goals:   app.Goals,
				Habits:  app.Habits,
				Suggest: app.Suggest,
				Metrics: app.Metrics,
				Logger:  app.Logger,
				Now:     app.Now,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "stride API listening on http://%s\n", addr)
			return srv.Listen(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
