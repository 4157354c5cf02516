package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor accounts.
type VendorRepository interface {
	// Add persists a new vendor. Shop name and email carry unique constraints.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor (e.g. delivery price).
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor by id. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetByEmail retrieves a vendor by normalized email.
	// Returns ObjectNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*vendor.Vendor, error)
}
