package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// Allocates the next sequential order identifier, creates the order at the
// initial stage, and registers the client and manufacturer names in the
// catalog, all within one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("Sharma Textiles", "Patel Fabrics", 40)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now registered under the returned id
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.IDAllocator
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires a UoWFactory spanning orders and the catalog registry, since
// catalog names must exist no later than the order that references them.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewIDAllocator(),
	}
}

// Handle processes the order registration command.
// Derives the next identifier from the current order count, creates the
// order at the initial stage, and upserts the client and manufacturer
// catalog entries in the same transaction.
//
// Returns the allocated order identifier on success.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	count, err := orderRepo.Count(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}

	id, err := h.allocator.Next(count)
	if err != nil {
		return kernel.OrderID{}, err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(id, cmd.Client(), cmd.Manufacturer(), cmd.Quantity(), now)
	if err != nil {
		return kernel.OrderID{}, err
	}

	registry := uow.CatalogRegistry()
	clientEntry, err := catalog.NewEntry(catalog.Client, cmd.Client(), now)
	if err != nil {
		return kernel.OrderID{}, err
	}
	if err = registry.Add(ctx, clientEntry); err != nil {
		return kernel.OrderID{}, err
	}

	manufacturerEntry, err := catalog.NewEntry(catalog.Manufacturer, cmd.Manufacturer(), now)
	if err != nil {
		return kernel.OrderID{}, err
	}
	if err = registry.Add(ctx, manufacturerEntry); err != nil {
		return kernel.OrderID{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return id, nil
}
