package queries

import (
	"errors"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the registered names of one registry, in
// registration order.
type GetCatalogQuery struct {
	kind catalog.Kind

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query for the names of the given registry.
// Validates that the kind names a registry.
func NewGetCatalogQuery(kind catalog.Kind) (GetCatalogQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetCatalogQuery{}, err
	}

	return GetCatalogQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// Kind returns the registry to list.
func (q GetCatalogQuery) Kind() catalog.Kind {
	return q.kind
}

// GetCatalogQueryResponse holds the registered names of one registry.
type GetCatalogQueryResponse struct {
	Names []string
}
