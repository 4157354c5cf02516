// Package menu provides the MenuItem aggregate: a catalog entry owned by a
// vendor. Carts and orders reference menu items by id; the item's current price
// and availability are always read from the catalog, never cached on the cart.
package menu

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created through
	// NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	// ErrItemNameIsRequired is returned when attempting to create a menu item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
	// ErrCategoryIsRequired is returned when attempting to create a menu item without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// MenuItem is a single orderable entry in a vendor's catalog.
//
// Invariants:
//   - Must have a valid unique identifier and owning vendor id
//   - Name and category must be non-empty
//   - Price is a valid (non-negative) Money amount
//
// New items start available; availability is toggled through SetAvailability.
type MenuItem struct {
	id          kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	available   bool

	isConstructed bool
}

// NewMenuItem creates an available menu item owned by the given vendor.
func NewMenuItem(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVendorID(vendorID),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence, including its
// stored availability flag.
func RestoreMenuItem(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	available bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, vendorID, name, description, price, category)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// VendorID returns the identifier of the vendor who owns this item.
func (m *MenuItem) VendorID() kernel.UUID {
	return m.vendorID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the optional free-text description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the item's current unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the item's catalog category.
func (m *MenuItem) Category() string {
	return m.category
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// Rename updates the item's name and description.
func (m *MenuItem) Rename(name, description string) error {
	if err := m.setName(name); err != nil {
		return err
	}
	m.description = description
	return nil
}

// ChangePrice updates the item's unit price. Existing orders keep their
// snapshotted price; only future carts and orders see the new one.
func (m *MenuItem) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

// ChangeCategory moves the item to a different catalog category.
func (m *MenuItem) ChangeCategory(category string) error {
	return m.setCategory(category)
}

// SetAvailability toggles whether the item can be added to carts.
func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	m.vendorID = vendorID
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	m.category = category
	return nil
}
