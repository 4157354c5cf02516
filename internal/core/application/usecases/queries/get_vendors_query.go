package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorsQueryIsNotConstructed = errors.New(
	"GetVendorsQuery must be created via NewGetVendorsQuery constructor",
)

// GetVendorsQuery retrieves the public storefront list of vendors.
type GetVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVendorsQuery creates a query to list all vendors.
// This is a parameterless query.
func NewGetVendorsQuery() GetVendorsQuery {
	return GetVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorsQueryIsNotConstructed)
}

// VendorResponse is the public profile of one vendor.
type VendorResponse struct {
	ID            kernel.UUID
	ShopName      string
	Address       string
	DeliveryPrice int64
}
