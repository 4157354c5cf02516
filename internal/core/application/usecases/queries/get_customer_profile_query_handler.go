package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerProfileQueryHandler retrieves a customer's profile from the
// database.
type GetCustomerProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerProfileQueryHandler creates a handler for profile queries.
func NewGetCustomerProfileQueryHandler(db *gorm.DB) GetCustomerProfileQueryHandler {
	return GetCustomerProfileQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when the customer does
// not exist.
func (h GetCustomerProfileQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerProfileQuery,
) (CustomerProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerProfileResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			address
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CustomerProfileResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerProfileResponse{}, err
		}
		return CustomerProfileResponse{},
			errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	var profile CustomerProfileResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.Address,
	)
	if err != nil {
		return CustomerProfileResponse{}, err
	}

	if profile.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CustomerProfileResponse{}, err
	}

	return profile, nil
}
