// Package worker runs the background jobs of the service on River.
package worker

import (
	"context"
	"fmt"
	"hellofood/pkg/logger"
	"hellofood/pkg/notifier"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const defaultMaxWorkers = 10

type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
}

// Start registers the workers and starts a River client on dbPool. The caller
// stops it with Stop on shutdown.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	notifier notifier.Notifier,
	options Options,
) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, NewNotificationWorker(notifier)); err != nil {
		return nil, fmt.Errorf("could not register notification worker: %w", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
