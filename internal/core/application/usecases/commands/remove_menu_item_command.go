package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a vendor's request to delete one of its
// menu items. Existing order snapshots are unaffected.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	vendorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to delete a menu item.
func NewRemoveMenuItemCommand(menuItemID, vendorID kernel.UUID) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the item to delete.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// VendorID returns the identifier of the vendor issuing the request.
func (c RemoveMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *RemoveMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *RemoveMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
