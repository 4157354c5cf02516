package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorMenuQueryHandler retrieves a vendor's menu from the database,
// grouped by category then name.
type GetVendorMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorMenuQueryHandler creates a handler for menu queries.
func NewGetVendorMenuQueryHandler(db *gorm.DB) GetVendorMenuQueryHandler {
	return GetVendorMenuQueryHandler{db: db}
}

// Handle executes the query.
func (h GetVendorMenuQueryHandler) Handle(
	ctx context.Context,
	query GetVendorMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			id,
			vendor_id,
			name,
			description,
			price,
			category,
			available
		FROM menu_items
		WHERE vendor_id = ?
	`
	if query.OnlyAvailable() {
		querySQL += ` AND available`
	}
	querySQL += ` ORDER BY category, name`

	rows, err := h.db.WithContext(ctx).Raw(querySQL, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var item MenuItemResponse
		var id, vendorID uuid.UUID

		err = rows.Scan(
			&id,
			&vendorID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
