// Package auth provides the authentication primitives used by the HTTP layer:
// bcrypt password hashing and HS256 JWT issuing/verification. The rest of the
// application only ever sees the verified principal (id + role) these produce.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies which side of the marketplace a principal belongs to.
// Every scoped operation derives its customer or vendor id from the principal.
type Role string

const (
	// RoleCustomer marks tokens issued to customer accounts.
	RoleCustomer Role = "customer"
	// RoleVendor marks tokens issued to vendor accounts.
	RoleVendor Role = "vendor"
)

// ErrInvalidToken is returned when a token cannot be parsed, fails signature
// verification, is expired, or carries malformed claims.
var ErrInvalidToken = errors.New("token is invalid or expired")

// Claims is the JWT claim set carried by every issued token.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified identity extracted from a valid token.
type Principal struct {
	ID   string
	Role Role
}

// TokenService issues and verifies HS256-signed JWTs.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// Tokens expire after ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given principal id and role.
func (s *TokenService) Issue(principalID string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the principal it identifies.
// Returns ErrInvalidToken for any verification failure.
func (s *TokenService) Verify(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return Principal{}, ErrInvalidToken
	}

	if claims.Role != RoleCustomer && claims.Role != RoleVendor {
		return Principal{}, ErrInvalidToken
	}

	return Principal{ID: claims.Subject, Role: claims.Role}, nil
}
