package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler handles the business logic for editing a menu
// item. The item is loaded scoped to the requesting vendor, so a vendor can
// never edit another vendor's catalog.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.GetForVendor(ctx, cmd.MenuItemID(), cmd.VendorID())
	if err != nil {
		return err
	}

	if err = item.Rename(cmd.Name(), cmd.Description()); err != nil {
		return err
	}
	if err = item.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	if err = item.ChangeCategory(cmd.Category()); err != nil {
		return err
	}
	item.SetAvailability(cmd.Available())

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
