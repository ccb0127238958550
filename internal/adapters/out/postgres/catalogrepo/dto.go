// Package catalogrepo provides data transfer objects and mapping functions
// for the client and manufacturer registries.
package catalogrepo

import (
	"time"

	"printflow/internal/core/domain/model/catalog"

	"github.com/google/uuid"
)

// CatalogEntryDTO represents one registered name. The (kind, name) pair is
// unique: registering the same name twice in the same registry is a no-op.
type CatalogEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      int       `gorm:"uniqueIndex:idx_catalog_kind_name"`
	Name      string    `gorm:"uniqueIndex:idx_catalog_kind_name"`
	CreatedAt time.Time
}

// TableName specifies the database table name for registry entries.
func (CatalogEntryDTO) TableName() string {
	return "catalog_entries"
}

// fromDomain converts a registry entry to its database representation.
// Each row gets a fresh surrogate key; uniqueness rides on (kind, name).
func fromDomain(entry catalog.Entry) CatalogEntryDTO {
	return CatalogEntryDTO{
		ID:        uuid.New(),
		Kind:      int(entry.Kind()),
		Name:      entry.Name(),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database row to a registry entry.
func toDomain(dto CatalogEntryDTO) (catalog.Entry, error) {
	return catalog.NewEntry(catalog.Kind(dto.Kind), dto.Name, dto.CreatedAt)
}
