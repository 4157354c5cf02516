package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorOrderQueryIsNotConstructed = errors.New(
	"GetVendorOrderQuery must be created via NewGetVendorOrderQuery constructor",
)

// GetVendorOrderQuery retrieves one order scoped to its owning vendor.
type GetVendorOrderQuery struct {
	orderID  kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorOrderQuery creates a query for one of a vendor's orders.
func NewGetVendorOrderQuery(orderID, vendorID kernel.UUID) (GetVendorOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), vendorID.Validate()); err != nil {
		return GetVendorOrderQuery{}, err
	}

	return GetVendorOrderQuery{
		orderID:  orderID,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetVendorOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// VendorID returns the requesting vendor's identifier.
func (q GetVendorOrderQuery) VendorID() kernel.UUID {
	return q.vendorID
}
