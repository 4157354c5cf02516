package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
)

// GetCustomerOrderQuery retrieves one order scoped to its owning customer.
// An order belonging to someone else is indistinguishable from a missing one.
type GetCustomerOrderQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a query for one of a customer's orders.
func NewGetCustomerOrderQuery(orderID, customerID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	return GetCustomerOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetCustomerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer's identifier.
func (q GetCustomerOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}
