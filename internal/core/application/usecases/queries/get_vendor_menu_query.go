package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetVendorMenuQueryIsNotConstructed = errors.New(
	"GetVendorMenuQuery must be created via NewGetVendorMenuQuery constructor",
)

// GetVendorMenuQuery retrieves a vendor's menu. The public storefront only
// shows available items; the vendor's own management view shows everything.
type GetVendorMenuQuery struct {
	vendorID      kernel.UUID
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetVendorMenuQuery creates a query for a vendor's menu items.
func NewGetVendorMenuQuery(vendorID kernel.UUID, onlyAvailable bool) (GetVendorMenuQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorMenuQuery{}, err
	}

	return GetVendorMenuQuery{
		vendorID:      vendorID,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorMenuQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose menu to list.
func (q GetVendorMenuQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// OnlyAvailable reports whether unavailable items are filtered out.
func (q GetVendorMenuQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// MenuItemResponse is one catalog item as stored today.
type MenuItemResponse struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	Name        string
	Description string
	Price       int64
	Category    string
	Available   bool
}
