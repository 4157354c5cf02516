package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a vendor's request to replace the
// editable attributes of one of its menu items. Orders already placed keep
// their snapshots; only future carts see the change.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	available   bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID, vendorID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	available bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setVendorID(vendorID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// VendorID returns the identifier of the vendor issuing the request.
func (c UpdateMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the item's new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item's new description, possibly empty.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item's new unit price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the item's new menu section.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// Available returns the item's new availability flag.
func (c UpdateMenuItemCommand) Available() bool {
	return c.available
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
