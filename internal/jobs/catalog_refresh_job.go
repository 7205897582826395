package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CatalogRefreshJob reloads the market-price snapshot on a schedule so newly
// opened stages prefill with current prices.
type CatalogRefreshJob struct {
	catalog ports.ProductCatalog
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCatalogRefreshJob creates a job that refreshes the price catalog on the
// given cron spec (with seconds field).
func NewCatalogRefreshJob(catalog ports.ProductCatalog, spec string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog: catalog,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the scheduled catalog refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		if err := j.catalog.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Catalog refreshed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the catalog refresh job.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
