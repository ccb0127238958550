package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ProductSarees is the only product line the workshop currently
// handles. Every order is created with this product.
const ProductSarees = "Sarees"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAtTerminalStage is returned when Advance is called on an order
	// that already reached Photos Delivered. The refusal is a normal business
	// outcome, not a fault.
	ErrOrderAtTerminalStage = errors.New("order is already at the terminal stage")

	// ErrOrderAtInitialStage is returned when Undo is called on an order
	// that is still at Order Received. There is no earlier stage to return to.
	ErrOrderAtInitialStage = errors.New("order is already at the initial stage")
)

// Order represents a production order in the workshop. It is the aggregate root
// that manages the order lifecycle from intake through the fixed fulfillment
// process to delivery of the finished photographs.
//
// Order follows these invariants:
//   - Must have a valid ORD-prefixed identifier
//   - Client and manufacturer names must be non-blank
//   - Quantity must not be negative
//   - The current status always equals the stage of the last timeline entry
//   - The timeline is a prefix of the fulfillment sequence starting at
//     Order Received, with no gaps and no repeats
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique ORD-prefixed identifier for the order
	id kernel.OrderID

	// client is the party that placed the order
	client string

	// manufacturer supplied the goods to photograph
	manufacturer string

	// product is the product line, always "Sarees"
	product string

	// quantity is the number of pieces in the order (never negative)
	quantity int

	// createdAt is the moment the order was received
	createdAt time.Time

	// status is the current fulfillment stage
	status Stage

	// timeline records every stage reached, in process order
	timeline []TimelineEntry

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid fresh Order, ensuring all business invariants are
// maintained.
//
// Parameters:
//   - id: Unique ORD-prefixed identifier for the order
//   - client: Name of the party that placed the order (must be non-blank)
//   - manufacturer: Name of the supplier of the goods (must be non-blank)
//   - quantity: Number of pieces (must not be negative)
//   - createdAt: The moment the order was received (must be set)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	id, _ := kernel.NewOrderID(1)
//	order, err := NewOrder(id, "Sharma Textiles", "Patel Fabrics", 40, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs, sets the product line, places the
// order at Order Received, and seeds the timeline with the initial entry.
func NewOrder(id kernel.OrderID, client string, manufacturer string, quantity int, createdAt time.Time) (*Order, error) {
	order := &Order{
		product:       ProductSarees,
		status:        OrderReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(client),
		order.setManufacturer(manufacturer),
		order.setQuantity(quantity),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	entry, err := NewTimelineEntry(OrderReceived, createdAt)
	if err != nil {
		return nil, err
	}
	order.timeline = []TimelineEntry{entry}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts an existing timeline and derives the current status from its last
// entry.
//
// The timeline must be a well-formed process history:
//   - at least one entry
//   - the first entry at Order Received
//   - each subsequent entry at the stage directly following the previous one
//
// Returns a validation error when the persisted history violates these rules,
// so corrupted rows surface at load time instead of producing an order with
// an impossible state.
func RestoreOrder(id kernel.OrderID, client string, manufacturer string, quantity int,
	createdAt time.Time, timeline []TimelineEntry) (*Order, error) {
	order := &Order{
		product:       ProductSarees,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(client),
		order.setManufacturer(manufacturer),
		order.setQuantity(quantity),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := validateTimeline(timeline); err != nil {
		return nil, err
	}

	order.timeline = make([]TimelineEntry, len(timeline))
	copy(order.timeline, timeline)
	order.status = timeline[len(timeline)-1].Stage()

	return order, nil
}

// validateTimeline checks that a persisted timeline is a gapless prefix of
// the fulfillment sequence starting at Order Received.
func validateTimeline(timeline []TimelineEntry) error {
	if len(timeline) == 0 {
		return errs.NewValueIsRequiredError("timeline")
	}
	if timeline[0].Stage() != OrderReceived {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeline",
			fmt.Errorf("history starts at %q, expected %q", timeline[0].Stage(), OrderReceived),
		)
	}
	for i := 1; i < len(timeline); i++ {
		next, err := timeline[i-1].Stage().Next()
		if err != nil || timeline[i].Stage() != next {
			return errs.NewValueIsInvalidErrorWithCause(
				"timeline",
				fmt.Errorf("history jumps from %q to %q", timeline[i-1].Stage(), timeline[i].Stage()),
			)
		}
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a factory
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Client returns the name of the party that placed the order.
func (o *Order) Client() string {
	return o.client
}

// Manufacturer returns the name of the supplier of the goods.
func (o *Order) Manufacturer() string {
	return o.manufacturer
}

// Product returns the product line of the order.
func (o *Order) Product() string {
	return o.product
}

// Quantity returns the number of pieces in the order.
func (o *Order) Quantity() int {
	return o.quantity
}

// CreatedAt returns the moment the order was received.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current fulfillment stage of the order.
func (o *Order) Status() Stage {
	return o.status
}

// Timeline returns a copy of the order's stage history, in process order.
// The first entry is always Order Received; the last entry matches Status().
func (o *Order) Timeline() []TimelineEntry {
	timeline := make([]TimelineEntry, len(o.timeline))
	copy(timeline, o.timeline)
	return timeline
}

// IsTerminal reports whether the order reached Photos Delivered.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// IsActive reports whether the order is still in progress, meaning it has
// not reached the terminal stage yet.
func (o *Order) IsActive() bool {
	return !o.IsTerminal()
}

// Advance moves the order to the next stage of the fulfillment process and
// appends a timeline entry stamped with the given moment.
//
// This method enforces the following business rules:
//   - The order must not be at the terminal stage
//   - The timestamp must be set
//
// Returns:
//   - nil on successful advance
//   - ErrOrderAtTerminalStage if the order already reached Photos Delivered
//
// Example:
//
//	err := order.Advance(time.Now())
//	if errors.Is(err, order.ErrOrderAtTerminalStage) {
//	    // The order is already delivered; nothing to advance
//	}
//
// After a successful advance the timeline grows by exactly one entry and
// Status() returns the new stage.
func (o *Order) Advance(at time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	entry, err := NewTimelineEntry(next, at)
	if err != nil {
		return err
	}

	o.timeline = append(o.timeline, entry)
	o.status = next
	return nil
}

// Undo reverts the most recent advance, returning the order to its previous
// stage. It is the exact inverse of Advance: the last timeline entry is
// removed and no other entry is touched, so the timestamps of earlier stages
// survive an advance-then-undo round trip unchanged.
//
// Returns:
//   - nil on successful undo
//   - ErrOrderAtInitialStage if the order is still at Order Received
func (o *Order) Undo() error {
	if len(o.timeline) <= 1 {
		return ErrOrderAtInitialStage
	}

	o.timeline = o.timeline[:len(o.timeline)-1]
	o.status = o.timeline[len(o.timeline)-1].Stage()
	return nil
}

// ChangeDetails updates the editable attributes of the order. The fulfillment
// state (status and timeline) is never touched by an edit.
//
// The same validation rules as construction apply: client and manufacturer
// must be non-blank and quantity must not be negative. On any validation
// failure the order is left unchanged.
func (o *Order) ChangeDetails(client string, manufacturer string, quantity int) error {
	updated := *o
	if err := errors.Join(
		updated.setClient(client),
		updated.setManufacturer(manufacturer),
		updated.setQuantity(quantity),
	); err != nil {
		return err
	}

	o.client = updated.client
	o.manufacturer = updated.manufacturer
	o.quantity = updated.quantity
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClient validates and sets the client name.
// This is a private method used during construction and edits.
func (o *Order) setClient(client string) error {
	if strings.TrimSpace(client) == "" {
		return errs.NewValueIsRequiredError("client")
	}
	o.client = client
	return nil
}

// setManufacturer validates and sets the manufacturer name.
// This is a private method used during construction and edits.
func (o *Order) setManufacturer(manufacturer string) error {
	if strings.TrimSpace(manufacturer) == "" {
		return errs.NewValueIsRequiredError("manufacturer")
	}
	o.manufacturer = manufacturer
	return nil
}

// setQuantity validates and sets the order's quantity.
// Quantity must not be negative. Zero is allowed: some orders are registered
// before the piece count is known.
// This is a private method used during construction and edits.
func (o *Order) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	o.quantity = quantity
	return nil
}

// setCreatedAt validates and sets the order's intake timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
