// Package jobs provides scheduled background tasks for the allocation engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the engine needs.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - Reloads the market-price snapshot on a configurable schedule
// 2. WorksheetSweeperJob - Runs every minute to drop worksheets idle beyond their TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(catalog, refreshSpec, store, worksheetTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - Refresh failures keep the previous snapshot; stages keep opening with the
//     last known prices
//   - Sweep failures are logged and retried on the next tick
//   - Failed job starts will stop any already running jobs
package jobs
