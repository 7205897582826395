package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// WorksheetSweeperJob drops worksheets nobody has touched for a while.
// Sweeping is safe: the next open rebuilds the worksheet from the persisted
// payload, only unsaved edits are lost.
type WorksheetSweeperJob struct {
	store  ports.WorksheetStore
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewWorksheetSweeperJob creates a job that sweeps idle worksheets every
// minute, removing those idle longer than ttl.
func NewWorksheetSweeperJob(store ports.WorksheetStore, ttl time.Duration, logger *slog.Logger) *WorksheetSweeperJob {
	return &WorksheetSweeperJob{
		store:  store,
		ttl:    ttl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "worksheet_sweeper_job"),
	}
}

// Start begins the sweep schedule.
func (j *WorksheetSweeperJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		swept, err := j.store.SweepIdle(ctx, time.Now().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Worksheet sweep failed", "error", err)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept idle worksheets", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Worksheet sweeper job started", "ttl", j.ttl.String())
	return nil
}

// Stop stops the sweeper job.
func (j *WorksheetSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Worksheet sweeper job stopped")
}
