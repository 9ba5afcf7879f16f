// Package main runs the todo lifecycle walkthrough. It wires dependencies
// using samber/do v2, loads profile configuration, and executes the
// walkthrough once under a signal-cancellable context.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-core/internal/app"
	"github.com/jsamuelsen11/todo-core/internal/platform/config"
	"github.com/jsamuelsen11/todo-core/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	// Bootstrap: config, logger.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.Provide(injector, func(i do.Injector) (*app.Walkthrough, error) {
		return app.NewWalkthrough(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	walkthrough, err := do.Invoke[*app.Walkthrough](injector)
	if err != nil {
		return fmt.Errorf("resolving walkthrough: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshots, err := walkthrough.Run(logging.WithLogger(ctx, logger))
	if err != nil {
		return fmt.Errorf("running walkthrough: %w", err)
	}

	logger.Info("walkthrough complete", slog.Int("todos_completed", len(snapshots)))
	return nil
}
