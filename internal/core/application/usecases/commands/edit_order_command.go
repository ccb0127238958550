package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to correct the editable attributes
// of an order. Edits never touch the fulfillment state.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderID
	client       string
	manufacturer string
	quantity     int

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to correct an order's details.
// Validates the order id, that client and manufacturer are not blank, and
// that quantity is not negative.
func NewEditOrderCommand(orderID kernel.OrderID, client string, manufacturer string,
	quantity int) (EditOrderCommand, error) {
	editCommand := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOrderID(orderID),
		editCommand.setClient(client),
		editCommand.setManufacturer(manufacturer),
		editCommand.setQuantity(quantity),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to correct.
func (c EditOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Client returns the corrected client name.
func (c EditOrderCommand) Client() string {
	return c.client
}

// Manufacturer returns the corrected manufacturer name.
func (c EditOrderCommand) Manufacturer() string {
	return c.manufacturer
}

// Quantity returns the corrected number of pieces.
func (c EditOrderCommand) Quantity() int {
	return c.quantity
}

func (c *EditOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setClient(client string) error {
	if strings.TrimSpace(client) == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *EditOrderCommand) setManufacturer(manufacturer string) error {
	if strings.TrimSpace(manufacturer) == "" {
		return ErrManufacturerIsRequired
	}

	c.manufacturer = manufacturer
	return nil
}

func (c *EditOrderCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
