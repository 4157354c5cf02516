package queries

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/guard"
)

var ErrAuthenticateVendorQueryIsNotConstructed = errors.New(
	"AuthenticateVendorQuery must be created via NewAuthenticateVendorQuery constructor",
)

// AuthenticateVendorQuery checks a vendor's login credentials.
type AuthenticateVendorQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateVendorQuery creates a login query.
// The email is normalized to lower case to match registration.
func NewAuthenticateVendorQuery(email, password string) (AuthenticateVendorQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateVendorQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateVendorQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateVendorQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateVendorQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateVendorQuery) Email() string {
	return q.email
}

// Password returns the plain text password to check.
func (q AuthenticateVendorQuery) Password() string {
	return q.password
}
