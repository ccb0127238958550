package orderrepo

import (
	"context"
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its timeline to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, replacing its stored timeline with the
// current one. The column list is explicit so zero values like a quantity of
// 0 are written rather than skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("client", "manufacturer", "product", "quantity", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&TimelineEntryDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Timeline) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Timeline).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full timeline.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetByIDs retrieves the orders matching the given identifiers, oldest first.
// Identifiers with no matching row are omitted from the result.
func (r *GormOrderRepository) GetByIDs(ctx context.Context, ids []kernel.OrderID) ([]*order.Order, error) {
	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at, id").
		Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Count returns the number of stored orders.
func (r *GormOrderRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// Delete removes an order and its timeline.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.String()).
		Delete(&TimelineEntryDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
