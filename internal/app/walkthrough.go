// Package app provides application services that orchestrate use cases over
// the todo domain model. Services own structured logging and sequencing but
// contain no business rules; those live in domain/todo.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-core/domain/todo"
	"github.com/jsamuelsen11/todo-core/internal/platform/config"
)

// Walkthrough drives the todo lifecycle end to end for a configured set of
// seed titles: validate the title, create the todo, apply the configured
// priority, and complete it. Seeds whose titles fail validation are skipped
// with a warning; validation failures are recoverable, never fatal.
type Walkthrough struct {
	seeds    []string
	priority todo.Priority
	logger   *slog.Logger
}

// NewWalkthrough creates a Walkthrough from the demo configuration. A nil
// logger is replaced with a no-op logger.
func NewWalkthrough(cfg *config.Config, logger *slog.Logger) *Walkthrough {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walkthrough{
		seeds:    cfg.Demo.Seeds,
		priority: todo.Priority(cfg.Demo.DefaultPriority),
		logger:   logger,
	}
}

// Run executes the lifecycle for every seed and returns the final snapshots.
// It fails only when no seed yields a valid title.
func (w *Walkthrough) Run(ctx context.Context) ([]todo.Todo, error) {
	snapshots := make([]todo.Todo, 0, len(w.seeds))

	for _, seed := range w.seeds {
		title, err := todo.NewTitle(seed)
		if err != nil {
			w.logger.WarnContext(ctx, "skipping seed with invalid title",
				slog.String("operation", "Run"),
				slog.String("seed", seed),
				slog.Any("error", err),
			)
			continue
		}

		td := todo.New(title)
		w.logger.InfoContext(ctx, "created todo",
			slog.String("id", td.ID.String()),
			slog.String("title", td.Title.Value()),
			slog.String("status", td.Status.String()),
			slog.String("priority", td.Priority.String()),
		)

		td = td.SetPriority(w.priority)
		td = td.Complete()
		w.logger.InfoContext(ctx, "completed todo",
			slog.String("id", td.ID.String()),
			slog.String("status", td.Status.String()),
			slog.String("priority", td.Priority.String()),
			slog.Time("completed_at", *td.CompletedAt),
		)

		snapshots = append(snapshots, td)
	}

	if len(snapshots) == 0 {
		return nil, errors.New("no seed produced a valid todo")
	}
	return snapshots, nil
}
