// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database.
package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart priced against the current
// catalog. Cart lines store only item id and quantity; names and prices are
// joined in live, so the view always reflects today's menu.
//
// Example:
//
//	query, _ := NewGetCartQuery(customerID)
//	handler := NewGetCartQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//	fmt.Printf("%d items, subtotal %d\n", view.ItemCount, view.Subtotal)
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is the priced cart view. A customer without a cart
// gets an empty view, not an error.
type GetCartQueryResponse struct {
	Lines         []CartLineResponse
	ItemCount     int
	DistinctItems int
	Subtotal      int64
}

// CartLineResponse is one cart line priced against the current catalog.
type CartLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  int64
	Quantity   int
	LineTotal  int64
	Available  bool
}
