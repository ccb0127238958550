package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles the business logic for order removal.
// Removing an order deletes its timeline as well; catalog entries referencing
// the order's client or manufacturer are left untouched.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Verifies the order exists before deleting it, so removing an unknown order
// reports object-not-found instead of silently succeeding.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
