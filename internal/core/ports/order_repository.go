package ports

import (
	"context"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying production orders
// together with their stage timelines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing
	// its stored timeline with the current one.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full stage timeline.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByIDs retrieves the orders matching the given identifiers.
	// Identifiers with no matching order are omitted from the result.
	GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error)

	// Count returns the number of stored orders. Used to derive the next
	// sequential order identifier.
	Count(ctx context.Context) (int, error)

	// Delete removes an order and its timeline from storage.
	Delete(ctx context.Context, id kernel.OrderID) error
}
