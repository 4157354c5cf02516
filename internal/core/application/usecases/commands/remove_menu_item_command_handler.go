package commands

import (
	"context"
)

// RemoveMenuItemCommandHandler handles the business logic for deleting a
// menu item, scoped to the requesting vendor.
type RemoveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item deletion.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item deletion command.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Remove(ctx, cmd.MenuItemID(), cmd.VendorID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
