package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its
// timeline from the system.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to remove the given order.
// Validates that the order id is well formed.
func NewDeleteOrderCommand(orderID kernel.OrderID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderCommandIsNotConstructed if validation fails.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c DeleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
