package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler retrieves a vendor's incoming orders from the
// database.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order queries.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns the vendor's orders newest first, each
// with its item snapshots, filtered by status when one is given.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Status() != "" {
		return scanOrders(ctx, h.db, `
			SELECT `+orderColumns+`
			FROM orders
			WHERE vendor_id = ? AND status = ?
			ORDER BY created_at DESC
		`, query.VendorID().Bytes(), query.Status())
	}

	return scanOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE vendor_id = ?
		ORDER BY created_at DESC
	`, query.VendorID().Bytes())
}
