package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StalledOrdersJob reports orders sitting with the supplier.
// Runs every ten minutes and logs the order numbers currently in the
// InProcess and Shipped statuses so unfulfilled orders get noticed.
type StalledOrdersJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalledOrdersJob creates a job that watches in-flight orders.
func NewStalledOrdersJob(handler queries.GetOrdersByStatusQueryHandler, logger *slog.Logger) *StalledOrdersJob {
	return &StalledOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stalled_orders_job"),
	}
}

// Start begins the stalled orders job to run every ten minutes.
func (j *StalledOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()

		for _, status := range []order.Status{order.InProcess, order.Shipped} {
			query, queryErr := queries.NewGetOrdersByStatusQuery(status.String())
			if queryErr != nil {
				j.logger.ErrorContext(ctx, "Stalled orders job failed to build query",
					"status", status.String(), "error", queryErr)
				continue
			}

			orders, handleErr := j.handler.Handle(ctx, query)
			if handleErr != nil {
				j.logger.ErrorContext(ctx, "Stalled orders job failed",
					"status", status.String(), "error", handleErr)
				continue
			}

			for _, o := range orders {
				j.logger.InfoContext(ctx, "Order in flight",
					"order_number", o.OrderNumber,
					"status", o.Status,
					"supplier", o.SupplierName,
					"created_at", o.CreatedAt)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled orders job started (running every ten minutes)")
	return nil
}

// Stop stops the stalled orders job.
func (j *StalledOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled orders job stopped")
}
