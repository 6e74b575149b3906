package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/stride/internal/cli"
	"github.com/alexanderramin/stride/internal/config"
	"github.com/alexanderramin/stride/internal/llm"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/logging"
	"github.com/alexanderramin/stride/internal/metrics"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	rootCmd := cli.NewRootCmd(bootstrap)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap wires the stores, services and adapters once flags are parsed.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if opts.Seed {
		cfg.Seed = true
	}

	catalog, err := locale.Load(cfg.Locale)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		Quiet: !opts.Serving,
	})
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	useCases := []service.UseCaseObserver{service.NewLogUseCaseObserver(logger), m}

	// Goals and habits draw ids from one sequence so ids are unique
	// across both collections.
	seq := repository.NewMemorySequence()
	goals := service.NewGoalService(
		repository.NewGoalRepo(), seq,
		service.GoalPolicy{ReopenProgress: cfg.ReopenProgress},
		useCases...,
	)
	habits := service.NewHabitService(repository.NewHabitRepo(), seq, useCases...)

	if cfg.Seed {
		if err := service.Seed(ctx, goals, habits, time.Now()); err != nil {
			return nil, fmt.Errorf("seeding sample data: %w", err)
		}
	}

	var llmObserver llm.Observer = m
	if cfg.LLM.LogCalls {
		llmObserver = llm.MultiObserver{llm.NewLogObserver(logger), m}
	}
	var suggestions suggest.Service
	client, err := llm.NewClient(cfg.LLM, llmObserver)
	if err != nil {
		logger.Info("suggestions_disabled", zap.Error(err))
		suggestions = suggest.NewUnavailableService(err)
	} else {
		suggestions = suggest.NewService(client, catalog)
	}

	return &cli.App{
		Goals:   goals,
		Habits:  habits,
		Suggest: suggestions,
		Catalog: catalog,
		Logger:  logger,
		Metrics: m,
		Addr:    cfg.Server.Addr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		RunTUI: cli.RunTUI,
		Close:  func() { _ = logger.Sync() },
	}, nil
}
