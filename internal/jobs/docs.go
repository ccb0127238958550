// Package jobs provides scheduled background tasks for the order tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. CatalogSyncJob - Runs hourly to reconcile the client and manufacturer
// registries with the names referenced by stored orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncCatalogHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync job uses the cron expression "@hourly". Registry drift is rare
// and cheap to repair, so a tighter schedule buys nothing.
//
// # Error Handling
//
// - Sync failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
