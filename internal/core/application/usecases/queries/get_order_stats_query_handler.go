package queries

import (
	"context"

	"printflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes the dashboard counters straight from
// the orders table with one grouped query.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for the dashboard counters.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query. Every fulfillment stage appears in ByStage even
// when its count is zero; Active counts orders not yet delivered.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		ByStage: make(map[string]int, len(order.Stages())),
	}
	for _, stage := range order.Stages() {
		resp.ByStage[stage.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		stage := order.Stage(status)
		resp.ByStage[stage.String()] = count
		resp.Total += count
		if !stage.IsTerminal() {
			resp.Active += count
		}
	}
	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
