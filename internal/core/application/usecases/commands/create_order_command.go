package commands

import (
	"errors"
	"strings"

	"printflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientIsRequired       = errors.New("client is required")
	ErrManufacturerIsRequired = errors.New("manufacturer is required")
	ErrQuantityIsInvalid      = errors.New("quantity must not be negative")
)

// CreateOrderCommand represents a request to register a new production order.
// Encapsulates the client, the manufacturer supplying the goods, and the
// number of pieces.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Sharma Textiles", "Patel Fabrics", 40)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s registered", id)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	client       string
	manufacturer string
	quantity     int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that client and manufacturer are not blank and quantity is not
// negative. Returns an error if any validation fails.
func NewCreateOrderCommand(client string, manufacturer string, quantity int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClient(client),
		orderCommand.setManufacturer(manufacturer),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Client returns the name of the party placing the order.
func (c CreateOrderCommand) Client() string {
	return c.client
}

// Manufacturer returns the name of the supplier of the goods.
func (c CreateOrderCommand) Manufacturer() string {
	return c.manufacturer
}

// Quantity returns the number of pieces in the order.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setClient(client string) error {
	if strings.TrimSpace(client) == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setManufacturer(manufacturer string) error {
	if strings.TrimSpace(manufacturer) == "" {
		return ErrManufacturerIsRequired
	}

	c.manufacturer = manufacturer
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
