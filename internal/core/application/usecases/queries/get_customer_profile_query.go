package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerProfileQueryIsNotConstructed = errors.New(
	"GetCustomerProfileQuery must be created via NewGetCustomerProfileQuery constructor",
)

// GetCustomerProfileQuery retrieves the authenticated customer's own profile.
type GetCustomerProfileQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerProfileQuery creates a query for a customer's profile.
func NewGetCustomerProfileQuery(customerID kernel.UUID) (GetCustomerProfileQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerProfileQuery{}, err
	}

	return GetCustomerProfileQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerProfileQueryIsNotConstructed)
}

// CustomerID returns the requesting customer's identifier.
func (q GetCustomerProfileQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerProfileResponse is a customer's profile without credentials.
type CustomerProfileResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}
