// Package cart provides the Cart aggregate: the single active cart each
// customer owns. A cart holds insertion-ordered lines of (menu item, quantity)
// pairs; a menu item appears in at most one line. The single-vendor rule is
// enforced at insertion time by the application layer, which derives the
// accepted vendor from the first line's current catalog record.
package cart

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart was not created through
// NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// MaxLineQuantity bounds the quantity of a single cart line, including the
// merged quantity when the same item is added repeatedly. Together with
// kernel.MaxAmount it keeps pricing arithmetic away from int64 overflow.
const MaxLineQuantity = 1000

// Line is one (menu item, quantity) pair inside a cart.
// Lines are value objects; mutating the cart replaces them.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewLine creates a cart line. The quantity must be at least 1.
func NewLine(menuItemID kernel.UUID, quantity int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return Line{}, err
	}

	return Line{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the referenced catalog item id.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the ordered quantity (always ≥ 1).
func (l Line) Quantity() int {
	return l.quantity
}

// Cart is the aggregate root for a customer's active cart.
//
// Invariants:
//   - One cart per customer; the customer id is the owning key
//   - Lines keep insertion order; a menu item id is unique within the cart
//   - Every line quantity is at least 1
//
// A cart is never deleted once created: Clear empties the lines in place.
type Cart struct {
	customerID kernel.UUID
	lines      []Line

	isConstructed bool
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		lines:         make([]Line, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart with its persisted lines, preserving order.
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	c.lines = append(c.lines, lines...)
	return c, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's id.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// First returns the oldest line. The second result is false for an empty cart.
// The accepted vendor for new items is derived from this line's catalog record.
func (c *Cart) First() (Line, bool) {
	if len(c.lines) == 0 {
		return Line{}, false
	}
	return c.lines[0], true
}

// AddItem adds quantity of the given menu item. If a line for the item already
// exists its quantity is increased; otherwise a new line is appended.
func (c *Cart) AddItem(menuItemID kernel.UUID, quantity int) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.menuItemID.IsEqual(menuItemID) {
			if err := validateQuantity(line.quantity + quantity); err != nil {
				return err
			}
			c.lines[i].quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{menuItemID: menuItemID, quantity: quantity})
	return nil
}

// RemoveItem removes the line for the given menu item if present.
// Removing an absent line is a silent no-op, so removal is idempotent.
func (c *Cart) RemoveItem(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.menuItemID.IsEqual(menuItemID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return nil
}

// UpdateQuantity overwrites the quantity of an existing line.
// Returns ObjectNotFound when the cart has no line for the item.
func (c *Cart) UpdateQuantity(menuItemID kernel.UUID, quantity int) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.menuItemID.IsEqual(menuItemID) {
			c.lines[i].quantity = quantity
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cartItem", menuItemID.String())
}

// Clear empties the cart in place. The cart itself survives.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

func validateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	return nil
}
