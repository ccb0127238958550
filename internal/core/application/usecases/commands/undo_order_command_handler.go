package commands

import (
	"context"
)

// UndoOrderCommandHandler handles the business logic for reverting the most
// recent stage advance. The refusal to undo below the initial stage surfaces
// as order.ErrOrderAtInitialStage, which callers report as a notice rather
// than a fault.
//
// Example:
//
//	handler := NewUndoOrderCommandHandler(uowFactory)
//	cmd, _ := NewUndoOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrOrderAtInitialStage) {
//	    // Nothing to undo
//	}
type UndoOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUndoOrderCommandHandler creates a handler for stage reversal.
// Requires an OrderUoWFactory for transactional persistence.
func NewUndoOrderCommandHandler(uowFactory OrderUoWFactory) UndoOrderCommandHandler {
	return UndoOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo command.
// Loads the order, removes the last timeline entry, and persists the
// shortened timeline. Uses a transaction so the order is updated atomically.
func (h *UndoOrderCommandHandler) Handle(ctx context.Context, cmd UndoOrderCommand) error {
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

	if err = aggregate.Undo(); err != nil {
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
