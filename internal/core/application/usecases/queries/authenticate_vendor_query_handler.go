package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateVendorQueryHandler checks vendor credentials against the
// stored bcrypt hash.
type AuthenticateVendorQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateVendorQueryHandler creates a handler for vendor logins.
func NewAuthenticateVendorQueryHandler(db *gorm.DB) AuthenticateVendorQueryHandler {
	return AuthenticateVendorQueryHandler{db: db}
}

// Handle executes the credential check. Returns the vendor's id on success,
// ErrInvalidCredentials otherwise.
func (h AuthenticateVendorQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateVendorQuery,
) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var id uuid.UUID
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash
		FROM vendors
		WHERE email = ?
	`, query.Email()).Row()

	if err := row.Scan(&id, &passwordHash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isNoRows(err) {
			return kernel.UUID{}, ErrInvalidCredentials
		}
		return kernel.UUID{}, err
	}

	if !auth.CheckPassword(passwordHash, query.Password()) {
		return kernel.UUID{}, ErrInvalidCredentials
	}

	return kernel.UUIDFromBytes(id[:])
}
