// Package queries contains read-only operations over the current system
// state. Implements the Query side of the CQRS architecture: handlers read
// straight from the database and return plain view structures, bypassing the
// aggregate layer and its transaction machinery.
package queries

import (
	"errors"
	"time"

	"printflow/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its full stage timeline,
// oldest first.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s (%s)\n", o.ID, o.Client, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// TimelineItemResponse is one stage transition in an order's history.
type TimelineItemResponse struct {
	Stage     string
	EnteredAt time.Time
}

// GetAllOrdersQueryResponse represents one order with its full history.
type GetAllOrdersQueryResponse struct {
	ID           string
	Client       string
	Manufacturer string
	Product      string
	Quantity     int
	Status       string
	CreatedAt    time.Time
	Timeline     []TimelineItemResponse
}
