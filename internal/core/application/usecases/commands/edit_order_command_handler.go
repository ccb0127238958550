package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/catalog"
)

// EditOrderCommandHandler handles the business logic for correcting an
// order's details. Renamed clients and manufacturers are registered in the
// catalog within the same transaction, so the registry always knows every
// name an order references.
//
// Example:
//
//	handler := NewEditOrderCommandHandler(uowFactory)
//	cmd, _ := NewEditOrderCommand(orderID, "Verma Sarees", "Mehta Mills", 75)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order correction failed: %w", err)
//	}
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditOrderCommandHandler creates a handler for order corrections.
// Requires a UoWFactory spanning orders and the catalog registry.
func NewEditOrderCommandHandler(uowFactory UoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command.
// Loads the order, replaces its editable attributes without touching status
// or timeline, upserts the catalog entries for the new names, and persists
// everything atomically.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeDetails(cmd.Client(), cmd.Manufacturer(), cmd.Quantity()); err != nil {
		return err
	}

	now := time.Now().UTC()
	registry := uow.CatalogRegistry()

	clientEntry, err := catalog.NewEntry(catalog.Client, cmd.Client(), now)
	if err != nil {
		return err
	}
	if err = registry.Add(ctx, clientEntry); err != nil {
		return err
	}

	manufacturerEntry, err := catalog.NewEntry(catalog.Manufacturer, cmd.Manufacturer(), now)
	if err != nil {
		return err
	}
	if err = registry.Add(ctx, manufacturerEntry); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
