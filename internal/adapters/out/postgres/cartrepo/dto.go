// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is keyed by its owning customer and stores its
// lines as child rows ordered by insertion position.
package cartrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The customer id doubles as the primary key, one cart per customer.
// UpdatedAt feeds the abandoned-cart cleanup job.
type CartDTO struct {
	CustomerID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UpdatedAt  time.Time     `gorm:"not null"`
	Items      []CartItemDTO `gorm:"foreignKey:CartCustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. Position preserves insertion order;
// a menu item appears at most once per cart.
type CartItemDTO struct {
	CartCustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity       int       `gorm:"type:int;not null"`
	Position       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	customerID := aggregate.CustomerID().Bytes()
	lines := aggregate.Lines()
	items := make([]CartItemDTO, 0, len(lines))

	for i, line := range lines {
		items = append(items, CartItemDTO{
			CartCustomerID: customerID,
			MenuItemID:     line.MenuItemID().Bytes(),
			Quantity:       line.Quantity(),
			Position:       i,
		})
	}

	return CartDTO{
		CustomerID: customerID,
		UpdatedAt:  time.Now().UTC(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a cart aggregate.
// Items are expected in position order.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := cart.NewLine(menuItemID, item.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}
