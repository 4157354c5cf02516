package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrderQueryHandler retrieves one customer-scoped order from the
// database.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for single order queries.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when the order does not
// exist or belongs to a different customer.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ? AND customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}

	return singleOrder(orders, query.OrderID())
}
