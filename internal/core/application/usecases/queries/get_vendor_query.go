package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorQueryIsNotConstructed = errors.New(
	"GetVendorQuery must be created via NewGetVendorQuery constructor",
)

// GetVendorQuery retrieves the public profile of one vendor.
type GetVendorQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorQuery creates a query for a single vendor profile.
func NewGetVendorQuery(vendorID kernel.UUID) (GetVendorQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorQuery{}, err
	}

	return GetVendorQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor to fetch.
func (q GetVendorQuery) VendorID() kernel.UUID {
	return q.vendorID
}
