package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCatalogQueryHandler lists the names of one registry from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for registry listings.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query. Names come back in registration order.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	resp := GetCatalogQueryResponse{Names: make([]string, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name
		FROM catalog_entries
		WHERE kind = ?
		ORDER BY created_at, name
	`, int(query.Kind())).Rows()
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return GetCatalogQueryResponse{}, err
		}
		resp.Names = append(resp.Names, name)
	}
	if err = rows.Err(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return resp, nil
}
