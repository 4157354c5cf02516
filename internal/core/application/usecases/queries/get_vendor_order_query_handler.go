package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrderQueryHandler retrieves one vendor-scoped order from the
// database.
type GetVendorOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrderQueryHandler creates a handler for single vendor order queries.
func NewGetVendorOrderQueryHandler(db *gorm.DB) GetVendorOrderQueryHandler {
	return GetVendorOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when the order does not
// exist or belongs to a different vendor.
func (h GetVendorOrderQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ? AND vendor_id = ?
	`, query.OrderID().Bytes(), query.VendorID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}

	return singleOrder(orders, query.OrderID())
}
