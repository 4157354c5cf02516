package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are immutable snapshots except for the status field.
type OrderRepository interface {
	// Add persists a new order with its item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetForCustomer retrieves an order scoped to its owning customer.
	// A missing order and an order owned by another customer are reported
	// identically as ObjectNotFound.
	GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error)

	// GetForVendor retrieves an order scoped to its owning vendor.
	// A missing order and an order owned by another vendor are reported
	// identically as ObjectNotFound.
	GetForVendor(ctx context.Context, id, vendorID kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's status with compare-and-set
	// semantics: the write succeeds only if the stored status still equals
	// expected. A lost race is reported as ObjectNotFound on the
	// (id, expected status) pair.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
