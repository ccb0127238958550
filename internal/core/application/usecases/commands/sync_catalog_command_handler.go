package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/catalog"
)

// SyncCatalogCommandHandler reconciles the client and manufacturer
// registries with the order collection. Names referenced by orders but
// missing from their registry are registered; names with no referencing
// order are left alone, since registries may legitimately hold names ahead
// of their first order.
//
// Runs periodically from the catalog sync job as a safety net: the create
// and edit handlers already register names transactionally.
type SyncCatalogCommandHandler struct {
	uowFactory UoWFactory
}

// NewSyncCatalogCommandHandler creates a handler for registry reconciliation.
// Requires a UoWFactory spanning orders and the catalog registry.
func NewSyncCatalogCommandHandler(uowFactory UoWFactory) SyncCatalogCommandHandler {
	return SyncCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Registering a name that is already present is a no-op, so the whole order
// collection can be replayed against the registry safely.
func (h *SyncCatalogCommandHandler) Handle(ctx context.Context, cmd SyncCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	registry := uow.CatalogRegistry()
	for _, aggregate := range orders {
		clientEntry, err := catalog.NewEntry(catalog.Client, aggregate.Client(), now)
		if err != nil {
			return err
		}
		if err = registry.Add(ctx, clientEntry); err != nil {
			return err
		}

		manufacturerEntry, err := catalog.NewEntry(catalog.Manufacturer, aggregate.Manufacturer(), now)
		if err != nil {
			return err
		}
		if err = registry.Add(ctx, manufacturerEntry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
