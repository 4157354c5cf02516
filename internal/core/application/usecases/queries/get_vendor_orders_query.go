package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves the incoming orders of one vendor, newest
// first, optionally filtered by status.
type GetVendorOrdersQuery struct {
	vendorID kernel.UUID
	status   string

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's orders.
// status may be empty to list all of them.
func NewGetVendorOrdersQuery(vendorID kernel.UUID, status string) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return GetVendorOrdersQuery{
		vendorID: vendorID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose orders to list.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Status returns the status filter, empty for no filter.
func (q GetVendorOrdersQuery) Status() string {
	return q.status
}
