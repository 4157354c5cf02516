package commands

import (
	"context"
)

// AdvanceOrderStatusCommandHandler handles the business logic for order
// status progression. The order is loaded scoped to the requesting vendor,
// advanced through the domain transition rules and written back with
// compare-and-set semantics so concurrent advances cannot double-apply.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceOrderStatusCommand(orderID, vendorID, order.Preparing)
//
//	var transitionErr *order.IllegalTransitionError
//	if err := handler.Handle(ctx, cmd); errors.As(err, &transitionErr) {
//	    // tell the vendor which step is legal from the current status
//	}
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advance command.
// A lost compare-and-set race surfaces as a not-found error on the order in
// its expected status. The caller may re-read and retry.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForVendor(ctx, cmd.OrderID(), cmd.VendorID())
	if err != nil {
		return err
	}

	expected := o.Status()
	if err = o.AdvanceTo(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
