// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are immutable snapshots; only the status column
// ever changes after insert.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Customer contact details and money amounts are denormalized snapshots taken
// at placement time.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerName    string         `gorm:"type:varchar(255);not null"`
	CustomerPhone   string         `gorm:"type:varchar(64);not null"`
	DeliveryAddress string         `gorm:"type:varchar(512);not null"`
	Subtotal        int64          `gorm:"type:bigint;not null"`
	DeliveryPrice   int64          `gorm:"type:bigint;not null"`
	Total           int64          `gorm:"type:bigint;not null"`
	Status          string         `gorm:"type:varchar(32);not null;index"`
	PaymentMethod   string         `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time      `gorm:"not null"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshotted order line. Name and unit price
// are copied from the catalog at placement time and never updated.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"type:int;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	ItemName   string    `gorm:"type:varchar(255);not null"`
	UnitPrice  int64     `gorm:"type:bigint;not null"`
	Quantity   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			ItemName:   item.Name(),
			UnitPrice:  item.UnitPrice().Amount(),
			Quantity:   item.Quantity(),
		})
	}

	snapshot := aggregate.Customer()

	return OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		CustomerName:    snapshot.Name,
		CustomerPhone:   snapshot.Phone,
		DeliveryAddress: snapshot.Address,
		Subtotal:        aggregate.Subtotal().Amount(),
		DeliveryPrice:   aggregate.DeliveryPrice().Amount(),
		Total:           aggregate.Total().Amount(),
		Status:          aggregate.Status().String(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		CreatedAt:       time.Now().UTC(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// Items are expected in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryPrice, err := kernel.NewMoney(dto.DeliveryPrice)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	snapshot := order.CustomerSnapshot{
		Name:    dto.CustomerName,
		Phone:   dto.CustomerPhone,
		Address: dto.DeliveryAddress,
	}

	return order.RestoreOrder(
		id,
		customerID,
		vendorID,
		snapshot,
		items,
		deliveryPrice,
		status,
		order.PaymentMethod(dto.PaymentMethod),
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(menuItemID, dto.ItemName, unitPrice, dto.Quantity)
}
