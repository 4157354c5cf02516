package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrMenuItemUnavailable is returned when the requested item is currently
	// switched off by its vendor.
	ErrMenuItemUnavailable = errors.New("menu item is not available")

	// ErrVendorConflict is returned when the requested item belongs to a
	// different vendor than the items already in the cart. A cart holds items
	// from a single vendor at a time.
	ErrVendorConflict = errors.New("cart already contains items from another vendor")
)

// AddCartItemCommandHandler handles the business logic for adding an item to
// a cart. Enforces the single-vendor rule: the cart's vendor is derived from
// the current catalog record of its first line on every call, so a cart whose
// items were re-assigned in the catalog follows the catalog, not history.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	cmd, _ := NewAddCartItemCommand(customerID, menuItemID, 1)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrVendorConflict) {
//	    // ask the customer to clear the cart first
//	}
type AddCartItemCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory ShoppingUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Creates the cart on first use, merges quantities for repeated items and
// rejects unavailable items and cross-vendor additions. The cart row is
// locked for the duration of the transaction, so concurrent additions to the
// same cart serialize.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}
	if !item.IsAvailable() {
		return ErrMenuItemUnavailable
	}

	cartRepo := uow.CartRepository()
	activeCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		activeCart, err = cart.NewCart(cmd.CustomerID())
		if err != nil {
			return err
		}
	}

	if first, ok := activeCart.First(); ok {
		firstItem, err := menuRepo.Get(ctx, first.MenuItemID())
		if err != nil {
			return err
		}
		if !firstItem.VendorID().IsEqual(item.VendorID()) {
			return ErrVendorConflict
		}
	}

	if err = activeCart.AddItem(cmd.MenuItemID(), cmd.Quantity()); err != nil {
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
