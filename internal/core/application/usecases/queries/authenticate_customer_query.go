package queries

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/guard"
)

var (
	ErrAuthenticateCustomerQueryIsNotConstructed = errors.New(
		"AuthenticateCustomerQuery must be created via NewAuthenticateCustomerQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("email and password are required")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateCustomerQuery checks a customer's login credentials.
type AuthenticateCustomerQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateCustomerQuery creates a login query.
// The email is normalized to lower case to match registration.
func NewAuthenticateCustomerQuery(email, password string) (AuthenticateCustomerQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateCustomerQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateCustomerQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateCustomerQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateCustomerQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateCustomerQuery) Email() string {
	return q.email
}

// Password returns the plain text password to check.
func (q AuthenticateCustomerQuery) Password() string {
	return q.password
}
