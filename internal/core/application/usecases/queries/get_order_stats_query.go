package queries

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves the dashboard counters: total orders, orders
// still in progress, and a per-stage breakdown.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the dashboard counters.
// This is a parameterless query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds the dashboard counters. ByStage carries
// an entry for every fulfillment stage, zero when no order is there.
type GetOrderStatsQueryResponse struct {
	Total   int
	Active  int
	ByStage map[string]int
}
