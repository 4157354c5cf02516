package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer has at most one cart, keyed by customer id.
type CartRepository interface {
	// Get retrieves the customer's cart with its lines in insertion order.
	// Returns ObjectNotFound when the customer has no cart row yet.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save upserts the cart and replaces its stored lines with the aggregate's
	// current lines. Within a transaction the cart row is locked so concurrent
	// mutations of the same cart serialize as atomic read-modify-writes.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// ClearAbandoned empties the lines of every cart not touched since the
	// given cutoff. Returns the number of carts cleared. Cart rows survive.
	ClearAbandoned(ctx context.Context, before time.Time) (int64, error)
}
