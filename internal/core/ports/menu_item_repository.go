package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by id. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetForVendor retrieves a menu item scoped to its owning vendor.
	// Ownership mismatches are reported identically to absence.
	GetForVendor(ctx context.Context, id, vendorID kernel.UUID) (*menu.MenuItem, error)

	// Remove deletes a menu item scoped to its owning vendor.
	// Returns ObjectNotFound when no such item belongs to the vendor.
	Remove(ctx context.Context, id, vendorID kernel.UUID) error
}
