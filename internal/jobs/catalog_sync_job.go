package jobs

import (
	"context"
	"log/slog"

	"printflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CatalogSyncJob periodically reconciles the client and manufacturer
// registries with the names referenced by stored orders. Orders written
// before a registry entry was lost stay suggestible this way.
type CatalogSyncJob struct {
	handler commands.SyncCatalogCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCatalogSyncJob creates a new job for reconciling the registries.
// Uses SyncCatalogCommandHandler to replay order names into the catalog.
func NewCatalogSyncJob(handler commands.SyncCatalogCommandHandler, logger *slog.Logger) *CatalogSyncJob {
	return &CatalogSyncJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "catalog_sync_job"),
	}
}

// Start begins the catalog sync job to run every hour.
func (j *CatalogSyncJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSyncCatalogCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Catalog sync command construction failed", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Catalog sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog sync job started (running hourly)")
	return nil
}

// Stop stops the catalog sync job.
func (j *CatalogSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog sync job stopped")
}
