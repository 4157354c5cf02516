package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	// Add persists a new customer. The email carries a unique constraint.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id. Returns ObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by normalized email.
	// Returns ObjectNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
