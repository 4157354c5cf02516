package commands

import (
	"context"
)

// SetDeliveryPriceCommandHandler handles the business logic for changing a
// vendor's delivery fee.
type SetDeliveryPriceCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSetDeliveryPriceCommandHandler creates a handler for delivery fee changes.
func NewSetDeliveryPriceCommandHandler(uowFactory VendorUoWFactory) SetDeliveryPriceCommandHandler {
	return SetDeliveryPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery fee change command.
func (h *SetDeliveryPriceCommandHandler) Handle(ctx context.Context, cmd SetDeliveryPriceCommand) error {
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

	vendorRepo := uow.VendorRepository()
	vend, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = vend.SetDeliveryPrice(cmd.Price()); err != nil {
		return err
	}

	if err = vendorRepo.Update(ctx, vend); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
