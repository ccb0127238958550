package commands

import (
	"context"
	"time"
)

// AdvanceOrderCommandHandler handles the business logic for moving an order
// one stage forward. The refusal to advance past the terminal stage surfaces
// as order.ErrOrderAtTerminalStage, which callers report as a notice rather
// than a fault.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrOrderAtTerminalStage) {
//	    // Already delivered; nothing to advance
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for stage advancement.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
// Loads the order, advances it with the current timestamp, and persists the
// grown timeline. Uses a transaction so the order is updated atomically.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	if err = aggregate.Advance(time.Now().UTC()); err != nil {
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
