package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Snapshots the cart into an immutable order and clears the cart within a
// single transaction, so the customer never ends up with both an order and a
// full cart, or neither.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewOrderFactory())
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), customerID)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, services.ErrCartIsEmpty) {
//	    // nothing to order
//	}
type PlaceOrderCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	orderFactory services.OrderFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	orderFactory services.OrderFactory,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		orderFactory: orderFactory,
	}
}

// Handle processes the order placement command.
// Resolves the customer, the cart, the current catalog records for every
// cart line and the vendor derived from the first line, then delegates the
// snapshot rules to the order factory. A missing cart is treated as empty.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	activeCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return services.ErrCartIsEmpty
		}
		return err
	}
	if activeCart.IsEmpty() {
		return services.ErrCartIsEmpty
	}

	menuRepo := uow.MenuItemRepository()
	catalog := make(map[string]*menu.MenuItem, len(activeCart.Lines()))
	for _, line := range activeCart.Lines() {
		record, err := menuRepo.Get(ctx, line.MenuItemID())
		if err != nil {
			return err
		}
		catalog[record.ID().String()] = record
	}

	first, _ := activeCart.First()
	vendorID := catalog[first.MenuItemID().String()].VendorID()
	vend, err := uow.VendorRepository().Get(ctx, vendorID)
	if err != nil {
		return err
	}

	newOrder, err := h.orderFactory.CreateOrder(cmd.OrderID(), cust, vend, activeCart, catalog)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	activeCart.Clear()
	if err = cartRepo.Save(ctx, activeCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
