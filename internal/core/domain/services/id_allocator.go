package services

import (
	"printflow/internal/core/domain/model/kernel"
)

// IDAllocator is a domain service that issues identifiers for new
// orders. Identifiers are sequential: the next id is derived from the
// number of orders already registered, so the first order is ORD001,
// the second ORD002, and so on.
type IDAllocator struct{}

// NewIDAllocator creates a new IDAllocator instance.
func NewIDAllocator() IDAllocator {
	return IDAllocator{}
}

// Next derives the identifier for the next order from the current
// number of registered orders.
//
// Parameters:
//   - orderCount: The number of orders already registered (must not be
//     negative)
//
// Returns:
//   - kernel.OrderID: The identifier for the next order
//   - error: Validation error when the count is negative
func (a IDAllocator) Next(orderCount int) (kernel.OrderID, error) {
	return kernel.NewOrderID(orderCount + 1)
}
