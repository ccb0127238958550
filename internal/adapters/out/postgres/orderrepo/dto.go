// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by fulfillment stage.
type OrderDTO struct {
	ID           string `gorm:"type:text;primaryKey"`
	Client       string
	Manufacturer string
	Product      string
	Quantity     int
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	Timeline     []TimelineEntryDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TimelineEntryDTO represents one row of an order's stage history.
// Position preserves process order within an order's timeline.
type TimelineEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   string    `gorm:"type:text;index"`
	Position  int
	Stage     int
	EnteredAt time.Time
}

// TableName specifies the database table name for timeline rows.
func (TimelineEntryDTO) TableName() string {
	return "timeline_entries"
}

// fromDomain converts an order domain aggregate to its database representation.
// Timeline rows get fresh surrogate keys; their position column preserves
// process order.
func fromDomain(aggregate *order.Order) OrderDTO {
	timeline := aggregate.Timeline()
	rows := make([]TimelineEntryDTO, 0, len(timeline))
	for i, entry := range timeline {
		rows = append(rows, TimelineEntryDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().String(),
			Position:  i,
			Stage:     int(entry.Stage()),
			EnteredAt: entry.EnteredAt(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().String(),
		Client:       aggregate.Client(),
		Manufacturer: aggregate.Manufacturer(),
		Product:      aggregate.Product(),
		Quantity:     aggregate.Quantity(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		Timeline:     rows,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its stage history using RestoreOrder,
// which rejects corrupted timelines at load time.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]TimelineEntryDTO, len(dto.Timeline))
	copy(rows, dto.Timeline)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	timeline := make([]order.TimelineEntry, 0, len(rows))
	for _, row := range rows {
		entry, entryErr := order.NewTimelineEntry(order.Stage(row.Stage), row.EnteredAt)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	return order.RestoreOrder(id, dto.Client, dto.Manufacturer, dto.Quantity, dto.CreatedAt, timeline)
}
