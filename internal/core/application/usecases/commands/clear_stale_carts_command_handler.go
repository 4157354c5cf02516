package commands

import (
	"context"
	"time"
)

// ClearStaleCartsCommandHandler handles the periodic cleanup of abandoned
// carts. Invoked by the background job scheduler.
type ClearStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearStaleCartsCommandHandler creates a handler for cart cleanup.
func NewClearStaleCartsCommandHandler(uowFactory CartUoWFactory) ClearStaleCartsCommandHandler {
	return ClearStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command.
// Returns the number of carts that were emptied.
func (h *ClearStaleCartsCommandHandler) Handle(ctx context.Context, cmd ClearStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.MaxAge())
	cleared, err := uow.CartRepository().ClearAbandoned(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cleared, nil
}
