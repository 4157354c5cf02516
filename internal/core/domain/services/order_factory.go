package services

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/vendor"
)

var (
	// ErrCartIsEmpty is returned when attempting to build an order from a cart
	// with no lines.
	ErrCartIsEmpty = errors.New("cart is empty")
	// ErrMenuItemMissing is returned when a cart line references a menu item
	// that is absent from the supplied catalog records.
	ErrMenuItemMissing = errors.New("cart line references an unknown menu item")
	// ErrVendorMismatch is returned when a supplied catalog record belongs to a
	// different vendor than the one the order is being built for.
	ErrVendorMismatch = errors.New("menu item belongs to a different vendor")
)

// OrderFactory is a domain service that converts a customer's cart into an
// immutable order snapshot. It owns the snapshot rules: item names and unit
// prices are copied from the catalog records captured at this instant, the
// vendor's current delivery price is applied, and pricing is computed by the
// Order aggregate itself.
//
// The factory is pure: it performs no I/O. The application layer resolves the
// cart, customer, vendor and catalog records and passes them in.
//
// Example usage:
//
//	factory := services.NewOrderFactory()
//	o, err := factory.CreateOrder(orderID, cust, vend, activeCart, catalog)
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // nothing to order
//	}
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory instance.
func NewOrderFactory() OrderFactory {
	return OrderFactory{}
}

// CreateOrder builds a Pending order from the cart's lines.
//
// catalog maps menu item ids (in their canonical string form) to the catalog
// records re-resolved at placement time; every cart line must have an entry,
// and every entry must belong to the given vendor. The resulting order carries
// per-line {name, unitPrice} snapshots and the customer's contact snapshot, so
// later catalog or profile changes never affect it.
func (f OrderFactory) CreateOrder(
	orderID kernel.UUID,
	cust *customer.Customer,
	vend *vendor.Vendor,
	activeCart *cart.Cart,
	catalog map[string]*menu.MenuItem,
) (*order.Order, error) {
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if err := vend.Validate(); err != nil {
		return nil, err
	}
	if err := activeCart.Validate(); err != nil {
		return nil, err
	}
	if activeCart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(activeCart.Lines()))
	for _, line := range activeCart.Lines() {
		record, ok := catalog[line.MenuItemID().String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemMissing, line.MenuItemID())
		}
		if !record.VendorID().IsEqual(vend.ID()) {
			return nil, fmt.Errorf("%w: item %s", ErrVendorMismatch, record.ID())
		}

		item, err := order.NewItem(record.ID(), record.Name(), record.Price(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	snapshot := order.CustomerSnapshot{
		Name:    cust.Name(),
		Phone:   cust.Phone(),
		Address: cust.Address(),
	}

	return order.NewOrder(orderID, cust.ID(), vend.ID(), snapshot, items, vend.DeliveryPrice())
}
