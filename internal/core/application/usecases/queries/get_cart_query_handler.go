package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the priced cart view from the database.
// Lines whose menu item has been deleted from the catalog are dropped from
// the view; they no longer have a price to show.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query and aggregates the totals.
// ItemCount sums quantities, DistinctItems counts lines, Subtotal sums
// quantity times current unit price.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Lines: make([]CartLineResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.menu_item_id,
			mi.name,
			mi.price,
			ci.quantity,
			mi.available
		FROM cart_items ci
		JOIN menu_items mi ON mi.id = ci.menu_item_id
		WHERE ci.cart_customer_id = ?
		ORDER BY ci.position
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&line.Name,
			&line.UnitPrice,
			&line.Quantity,
			&line.Available,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		menuItemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.MenuItemID = menuItemID
		line.LineTotal = line.UnitPrice * int64(line.Quantity)

		response.Lines = append(response.Lines, line)
		response.ItemCount += line.Quantity
		response.DistinctItems++
		response.Subtotal += line.LineTotal
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
