package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorQueryHandler retrieves one vendor's public profile from the
// database.
type GetVendorQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorQueryHandler creates a handler for single vendor queries.
func NewGetVendorQueryHandler(db *gorm.DB) GetVendorQueryHandler {
	return GetVendorQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no vendor has the
// requested id.
func (h GetVendorQueryHandler) Handle(
	ctx context.Context,
	query GetVendorQuery,
) (VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_name,
			address,
			delivery_price
		FROM vendors
		WHERE id = ?
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return VendorResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VendorResponse{}, err
		}
		return VendorResponse{}, errs.NewObjectNotFoundError("vendor", query.VendorID())
	}

	var vend VendorResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&vend.ShopName,
		&vend.Address,
		&vend.DeliveryPrice,
	)
	if err != nil {
		return VendorResponse{}, err
	}

	if vend.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return VendorResponse{}, err
	}

	return vend, nil
}
