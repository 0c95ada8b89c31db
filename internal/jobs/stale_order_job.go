package jobs

import (
	"context"
	"log/slog"
	"time"

	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// staleOrderSchedule fires at every tenth minute.
const staleOrderSchedule = "0 */10 * * * *"

// DefaultStaleAfter is how long a pending order may sit unconfirmed before
// the job starts flagging it.
const DefaultStaleAfter = 30 * time.Minute

// stalePageSize bounds how many stale orders a single tick reports.
const stalePageSize = 100

// StaleOrderJob periodically scans for pending orders that nobody confirmed
// in time and logs them so operators can follow up with the customer.
type StaleOrderJob struct {
	handler    queries.ListOrdersQueryHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderJob creates a new job for flagging stale pending orders.
// Orders older than staleAfter are reported on every tick until resolved.
func NewStaleOrderJob(handler queries.ListOrdersQueryHandler, staleAfter time.Duration, logger *slog.Logger) *StaleOrderJob {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}

	return &StaleOrderJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every ten minutes.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(staleOrderSchedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started",
		"schedule", staleOrderSchedule, "staleAfter", j.staleAfter)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) run(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.staleAfter)
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{
		Status:    order.Pending.String(),
		CreatedTo: &cutoff,
	}, 1, stalePageSize)
	if err != nil {
		return err
	}

	page, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, stale := range page.Items {
		j.logger.WarnContext(ctx, "Pending order is going stale",
			"order", stale.Number,
			"customer", stale.CustomerName,
			"phone", stale.Phone,
			"age", time.Since(stale.CreatedAt).Round(time.Minute))
	}

	if page.Total > int64(len(page.Items)) {
		j.logger.WarnContext(ctx, "More stale orders than one scan reports",
			"reported", len(page.Items), "total", page.Total)
	}

	return nil
}
