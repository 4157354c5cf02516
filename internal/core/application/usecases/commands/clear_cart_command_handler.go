package commands

import (
	"context"
)

// ClearCartCommandHandler handles the business logic for emptying a cart.
// Clearing a cart that does not exist fails with a not-found error;
// clearing an already empty cart succeeds.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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
