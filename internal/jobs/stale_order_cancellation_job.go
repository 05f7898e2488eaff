package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob periodically cancels Pending orders that have
// exceeded the configured time-to-live.
type StaleOrderCancellationJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	schedule string
	orderTTL time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderCancellationJob creates a job that cancels stale pending orders.
// The schedule is a six-field cron expression with seconds; orderTTL is how
// long an order may stay Pending before it is considered stale.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	orderTTL time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:  handler,
		schedule: schedule,
		orderTTL: orderTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the scheduled cancellation runs.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.orderTTL)

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders",
				"count", cancelled,
				"cutoff", cutoff,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started",
		"schedule", j.schedule,
		"order_ttl", j.orderTTL,
	)
	return nil
}

// Stop stops the scheduled cancellation runs.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
