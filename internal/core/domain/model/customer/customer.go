// Package customer provides the Customer aggregate: the account that owns a
// cart and places orders. The profile fields (name, phone, address) are copied
// into every order at placement time as the delivery snapshot.
package customer

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created through
	// NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAddressIsRequired is returned when attempting to create a customer without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrPasswordHashIsRequired is returned when attempting to create a customer without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// Customer is the aggregate root for a customer account.
type Customer struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	address      string
	passwordHash string

	isConstructed bool
}

// NewCustomer creates a customer account. All profile fields are required;
// email is expected to be normalized (trimmed, lower-cased) by the caller.
func NewCustomer(id kernel.UUID, name, email, phone, address, passwordHash string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, email, phone, address, passwordHash string) (*Customer, error) {
	return NewCustomer(id, name, email, phone, address, passwordHash)
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the normalized login email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the contact phone copied into order snapshots.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address copied into order snapshots.
func (c *Customer) Address() string {
	return c.address
}

// PasswordHash returns the stored bcrypt hash.
func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *Customer) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = passwordHash
	return nil
}
