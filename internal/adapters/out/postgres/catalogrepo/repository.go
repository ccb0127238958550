package catalogrepo

import (
	"context"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRegistry using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Add registers a name in its registry. Conflicts on the (kind, name) pair
// are ignored, so re-registering an existing name is a no-op.
func (r *GormCatalogRepository) Add(ctx context.Context, entry catalog.Entry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(&dto).Error
}

// Remove deletes a name from its registry.
func (r *GormCatalogRepository) Remove(ctx context.Context, kind catalog.Kind, name string) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&CatalogEntryDTO{}, "kind = ? AND name = ?", int(kind), name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("catalog entry", name)
	}

	return nil
}

// GetAllByKind retrieves every registered name of the given kind, in
// registration order.
func (r *GormCatalogRepository) GetAllByKind(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dtos []CatalogEntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at, name").
		Find(&dtos, "kind = ?", int(kind)).Error
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
