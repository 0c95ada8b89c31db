package jobs

import (
	"context"
	"log/slog"
	"time"

	"ayoya/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// dailySummarySchedule fires every morning at 08:00.
const dailySummarySchedule = "0 0 8 * * *"

// DailySummaryJob logs the previous day's order counts and delivered revenue
// once a day, giving operators a pulse without opening the dashboard.
type DailySummaryJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailySummaryJob creates a new job for the morning order summary.
func NewDailySummaryJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_summary_job"),
	}
}

// Start begins the daily summary job.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc(dailySummarySchedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily summary failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started",
		"schedule", dailySummarySchedule)
	return nil
}

// Stop stops the daily summary job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}

func (j *DailySummaryJob) run(ctx context.Context) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery(&yesterday, &today))
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Daily order summary",
		"day", yesterday.Format("2006-01-02"),
		"total", stats.Total,
		"pending", stats.Pending,
		"confirmed", stats.Confirmed,
		"assigned", stats.Assigned,
		"inDelivery", stats.InDelivery,
		"delivered", stats.Delivered,
		"cancelled", stats.Cancelled,
		"deliveredRevenue", stats.DeliveredRevenue)
	return nil
}
