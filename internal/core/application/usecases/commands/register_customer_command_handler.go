package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when an account with the given email
// already exists.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Hashes the password and enforces email uniqueness.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	if _, err = customerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	cust, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
		passwordHash,
	)
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, cust); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
