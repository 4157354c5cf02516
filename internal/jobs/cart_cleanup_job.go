package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob empties carts that have been idle past the retention window.
// Cleared carts keep their row, so a returning customer starts from an empty
// cart rather than a missing one.
type CartCleanupJob struct {
	handler  commands.ClearStaleCartsCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartCleanupJob creates the cleanup job. The schedule is a six-field cron
// expression; maxAge is how long a cart may sit untouched before it is cleared.
func NewCartCleanupJob(
	handler commands.ClearStaleCartsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_cleanup_job"),
	}
}

// Start schedules the cleanup to run on the configured cron expression.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewClearStaleCartsCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", cmdErr)
			return
		}

		cleared, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", handleErr)
			return
		}

		if cleared > 0 {
			j.logger.InfoContext(ctx, "Cleared abandoned carts", "count", cleared)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
