package queries

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"

	"gorm.io/gorm"
)

// ComposeChallanQueryHandler loads the selected orders from the database,
// rebuilds their aggregates, and delegates page layout to the
// ChallanComposer domain service.
type ComposeChallanQueryHandler struct {
	db       *gorm.DB
	composer services.ChallanComposer
}

// NewComposeChallanQueryHandler creates a handler for challan composition.
// Requires a GORM database connection for query execution.
func NewComposeChallanQueryHandler(db *gorm.DB) ComposeChallanQueryHandler {
	return ComposeChallanQueryHandler{
		db:       db,
		composer: services.NewChallanComposer(),
	}
}

// Handle executes the composition. Selected ids with no matching order are
// reported in SkippedOrderIDs rather than failing the whole document; a
// selection resolving to no orders at all is an error.
func (h ComposeChallanQueryHandler) Handle(
	ctx context.Context,
	query ComposeChallanQuery,
) (ComposeChallanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ComposeChallanQueryResponse{}, err
	}

	orders, err := h.loadOrders(ctx, query.Request().OrderIDs())
	if err != nil {
		return ComposeChallanQueryResponse{}, err
	}

	doc, skipped, err := h.composer.Compose(orders, query.Request(), time.Now().UTC())
	if err != nil {
		return ComposeChallanQueryResponse{}, err
	}

	resp := ComposeChallanQueryResponse{
		Document:        doc,
		SkippedOrderIDs: make([]string, 0, len(skipped)),
	}
	for _, id := range skipped {
		resp.SkippedOrderIDs = append(resp.SkippedOrderIDs, id.String())
	}

	return resp, nil
}

// loadOrders fetches the selected orders and their timelines, rebuilding
// each aggregate. Ids with no row are simply absent from the result; the
// composer reports them as skipped.
func (h ComposeChallanQueryHandler) loadOrders(ctx context.Context,
	ids []kernel.OrderID) ([]*order.Order, error) {
	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client,
			manufacturer,
			quantity,
			created_at
		FROM orders
		WHERE id IN ?
		ORDER BY created_at, id
	`, rawIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type orderRow struct {
		id           string
		client       string
		manufacturer string
		quantity     int
		createdAt    time.Time
	}

	orderRows := make([]orderRow, 0, len(ids))
	for rows.Next() {
		var r orderRow
		if err = rows.Scan(&r.id, &r.client, &r.manufacturer, &r.quantity, &r.createdAt); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	timelines := make(map[string][]order.TimelineEntry, len(orderRows))
	timelineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			stage,
			entered_at
		FROM timeline_entries
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, rawIDs).Rows()
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

		entry, entryErr := order.NewTimelineEntry(order.Stage(stage), enteredAt)
		if entryErr != nil {
			return nil, entryErr
		}
		timelines[orderID] = append(timelines[orderID], entry)
	}
	if err = timelineRows.Err(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, r := range orderRows {
		id, idErr := kernel.OrderIDFromString(r.id)
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := order.RestoreOrder(id, r.client, r.manufacturer,
			r.quantity, r.createdAt, timelines[r.id])
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
