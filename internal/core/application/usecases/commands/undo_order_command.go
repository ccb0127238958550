package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrUndoOrderCommandIsNotConstructed = errors.New(
	"UndoOrderCommand must be created via NewUndoOrderCommand constructor",
)

// UndoOrderCommand represents a request to revert the most recent stage
// advance of an order.
type UndoOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewUndoOrderCommand creates a command to undo the last advance of the
// given order. Validates that the order id is well formed.
func NewUndoOrderCommand(orderID kernel.OrderID) (UndoOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UndoOrderCommand{}, err
	}

	return UndoOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUndoOrderCommandIsNotConstructed if validation fails.
func (c UndoOrderCommand) Validate() error {
	return c.guard.Validate(ErrUndoOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to revert.
func (c UndoOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
