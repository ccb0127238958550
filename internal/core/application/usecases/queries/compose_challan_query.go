package queries

import (
	"errors"

	"printflow/internal/core/domain/model/challan"
	"printflow/internal/pkg/guard"
)

var ErrComposeChallanQueryIsNotConstructed = errors.New(
	"ComposeChallanQuery must be created via NewComposeChallanQuery constructor",
)

// ComposeChallanQuery requests composition of a challan document over the
// current order collection. Composition is read-only: no order is mutated.
//
// Example:
//
//	req, _ := challan.NewRequest(challan.Master, ids, nil)
//	query, _ := NewComposeChallanQuery(req)
//	handler := NewComposeChallanQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compose challan: %w", err)
//	}
//	if len(resp.SkippedOrderIDs) > 0 {
//	    fmt.Printf("skipped unknown ids: %v\n", resp.SkippedOrderIDs)
//	}
type ComposeChallanQuery struct {
	request challan.Request

	guard guard.ConstructorGuard
}

// NewComposeChallanQuery creates a query from a validated challan request.
// The request carries its own validation; a zero-value request is rejected.
func NewComposeChallanQuery(request challan.Request) (ComposeChallanQuery, error) {
	if request.Type() == challan.UnknownType {
		return ComposeChallanQuery{}, challan.ErrTypeIsRequired
	}

	return ComposeChallanQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrComposeChallanQueryIsNotConstructed if validation fails.
func (q ComposeChallanQuery) Validate() error {
	return q.guard.Validate(ErrComposeChallanQueryIsNotConstructed)
}

// Request returns the challan request to compose.
func (q ComposeChallanQuery) Request() challan.Request {
	return q.request
}

// ComposeChallanQueryResponse holds the composed document together with the
// selected ids that matched no order.
type ComposeChallanQueryResponse struct {
	Document        challan.Document
	SkippedOrderIDs []string
}
