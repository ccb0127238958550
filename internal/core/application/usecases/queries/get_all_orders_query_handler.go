package queries

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order with its stage timeline.
// Orders come back oldest first, timeline entries in process order.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Runs one query over the orders table and one
// over the timeline table, then stitches the timelines onto their orders
// in memory.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client,
			manufacturer,
			product,
			quantity,
			status,
			created_at
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.Client,
			&resp.Manufacturer,
			&resp.Product,
			&resp.Quantity,
			&status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Stage(status).String()
		resp.Timeline = make([]TimelineItemResponse, 0)
		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	timelineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			stage,
			entered_at
		FROM timeline_entries
		ORDER BY order_id, position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer timelineRows.Close()

	for timelineRows.Next() {
		var orderID string
		var stage int
		var enteredAt time.Time

		if err = timelineRows.Scan(&orderID, &stage, &enteredAt); err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Timeline = append(orders[i].Timeline, TimelineItemResponse{
			Stage:     order.Stage(stage).String(),
			EnteredAt: enteredAt,
		})
	}
	if err = timelineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
