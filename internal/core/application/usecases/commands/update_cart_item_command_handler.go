package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
)

// UpdateCartItemCommandHandler handles the business logic for setting a cart
// line quantity. Unlike removal, updating requires the line to exist.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart line updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
// A missing cart is reported the same way as a missing line.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	activeCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundError("cartItem", cmd.MenuItemID())
		}
		return err
	}

	if err = activeCart.UpdateQuantity(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, activeCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
