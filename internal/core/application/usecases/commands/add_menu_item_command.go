package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrCategoryIsRequired = errors.New("category is required")
)

// AddMenuItemCommand represents a vendor's request to add an item to its
// menu. New items start available.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Name and category must be present; the price is already a validated Money.
func NewAddMenuItemCommand(
	menuItemID, vendorID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setVendorID(vendorID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier the new item will carry.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// VendorID returns the owning vendor's identifier.
func (c AddMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the item's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item's description, possibly empty.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item's unit price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu section the item belongs to.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c *AddMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
