package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorsQueryHandler retrieves the vendor list from the database,
// sorted by shop name for stable storefront output.
type GetVendorsQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorsQueryHandler creates a handler for vendor list queries.
func NewGetVendorsQueryHandler(db *gorm.DB) GetVendorsQueryHandler {
	return GetVendorsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetVendorsQueryHandler) Handle(ctx context.Context, query GetVendorsQuery) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_name,
			address,
			delivery_price
		FROM vendors
		ORDER BY shop_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]VendorResponse, 0)
	for rows.Next() {
		var vend VendorResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&vend.ShopName,
			&vend.Address,
			&vend.DeliveryPrice,
		)
		if err != nil {
			return nil, err
		}

		if vend.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		vendors = append(vendors, vend)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
