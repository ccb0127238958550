package ports

import (
	"context"

	"printflow/internal/core/domain/model/catalog"
)

// CatalogRegistry defines the persistence contract for the client and
// manufacturer registries. Names are free text with no referential
// integrity to orders: removing a name never touches orders that
// reference it.
type CatalogRegistry interface {
	// Add registers a name in its registry. Registering a name that is
	// already present is a no-op.
	Add(ctx context.Context, entry catalog.Entry) error

	// Remove deletes a name from its registry. Orders referencing the
	// name keep it as free text.
	Remove(ctx context.Context, kind catalog.Kind, name string) error

	// GetAllByKind retrieves every registered name of the given kind, in
	// registration order.
	GetAllByKind(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error)
}
