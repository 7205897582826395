package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogRefreshJob   *CatalogRefreshJob
	worksheetSweeperJob *WorksheetSweeperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	catalog ports.ProductCatalog,
	catalogRefreshSpec string,
	store ports.WorksheetStore,
	worksheetTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		catalogRefreshJob:   NewCatalogRefreshJob(catalog, catalogRefreshSpec, logger),
		worksheetSweeperJob: NewWorksheetSweeperJob(store, worksheetTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	if err := jm.worksheetSweeperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.catalogRefreshJob.Stop()
		return fmt.Errorf("failed to start worksheet sweeper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
	jm.worksheetSweeperJob.Stop()
}
