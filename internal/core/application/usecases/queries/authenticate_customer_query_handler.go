package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// AuthenticateCustomerQueryHandler checks customer credentials against the
// stored bcrypt hash.
type AuthenticateCustomerQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateCustomerQueryHandler creates a handler for customer logins.
func NewAuthenticateCustomerQueryHandler(db *gorm.DB) AuthenticateCustomerQueryHandler {
	return AuthenticateCustomerQueryHandler{db: db}
}

// Handle executes the credential check. Returns the customer's id on
// success, ErrInvalidCredentials otherwise.
func (h AuthenticateCustomerQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateCustomerQuery,
) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var id uuid.UUID
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, password_hash
		FROM customers
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
