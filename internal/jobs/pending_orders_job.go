package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob reports the approval backlog on a schedule.
// Runs every minute and logs how many orders are still awaiting approval.
type PendingOrdersJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a job that watches the Pending backlog.
func NewPendingOrdersJob(handler queries.GetOrdersByStatusQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the pending orders job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrdersByStatusQuery(order.Pending.String())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed to build query", "error", queryErr)
			return
		}

		orders, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", handleErr)
			return
		}

		if len(orders) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Orders awaiting approval", "count", len(orders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the pending orders job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
