package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/vendor"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// RegisterVendorCommandHandler handles the business logic for vendor
// registration. Hashes the password and enforces email uniqueness.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewRegisterVendorCommandHandler creates a handler for vendor registration.
func NewRegisterVendorCommandHandler(uowFactory VendorUoWFactory) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterVendorCommandHandler) Handle(ctx context.Context, cmd RegisterVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	if _, err = vendorRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	vend, err := vendor.NewVendor(
		cmd.VendorID(),
		cmd.ShopName(),
		cmd.OwnerName(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
		passwordHash,
	)
	if err != nil {
		return err
	}

	if err = vendorRepo.Add(ctx, vend); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
