package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrRegisterVendorCommandIsNotConstructed = errors.New(
		"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
	)
	ErrShopNameIsRequired  = errors.New("shop name is required")
	ErrOwnerNameIsRequired = errors.New("owner name is required")
)

// RegisterVendorCommand represents a request to create a vendor account.
// New vendors start with a zero delivery price until they set one.
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID  kernel.UUID
	shopName  string
	ownerName string
	email     string
	phone     string
	address   string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates a command to register a vendor.
func NewRegisterVendorCommand(
	vendorID kernel.UUID,
	shopName, ownerName, email, phone, address, password string,
) (RegisterVendorCommand, error) {
	cmd := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setShopName(shopName),
		cmd.setOwnerName(ownerName),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setPassword(password),
	); err != nil {
		return RegisterVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the identifier the new account will carry.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// ShopName returns the public shop name.
func (c RegisterVendorCommand) ShopName() string {
	return c.shopName
}

// OwnerName returns the account owner's name.
func (c RegisterVendorCommand) OwnerName() string {
	return c.ownerName
}

// Email returns the normalized login email.
func (c RegisterVendorCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c RegisterVendorCommand) Phone() string {
	return c.phone
}

// Address returns the shop address.
func (c RegisterVendorCommand) Address() string {
	return c.address
}

// Password returns the plain text password.
func (c RegisterVendorCommand) Password() string {
	return c.password
}

func (c *RegisterVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *RegisterVendorCommand) setShopName(shopName string) error {
	if strings.TrimSpace(shopName) == "" {
		return ErrShopNameIsRequired
	}

	c.shopName = shopName
	return nil
}

func (c *RegisterVendorCommand) setOwnerName(ownerName string) error {
	if strings.TrimSpace(ownerName) == "" {
		return ErrOwnerNameIsRequired
	}

	c.ownerName = ownerName
	return nil
}

func (c *RegisterVendorCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterVendorCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterVendorCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *RegisterVendorCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
