package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrSetDeliveryPriceCommandIsNotConstructed = errors.New(
	"SetDeliveryPriceCommand must be created via NewSetDeliveryPriceCommand constructor",
)

// SetDeliveryPriceCommand represents a vendor's request to change its flat
// delivery fee. Orders already placed keep the fee they were created with.
type SetDeliveryPriceCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewSetDeliveryPriceCommand creates a command to change a delivery fee.
func NewSetDeliveryPriceCommand(vendorID kernel.UUID, price kernel.Money) (SetDeliveryPriceCommand, error) {
	cmd := SetDeliveryPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setPrice(price),
	); err != nil {
		return SetDeliveryPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryPriceCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor issuing the request.
func (c SetDeliveryPriceCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Price returns the new delivery fee.
func (c SetDeliveryPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *SetDeliveryPriceCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *SetDeliveryPriceCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
