package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse is the read model of a placed order. Everything in it is a
// snapshot taken at placement time; only Status moves.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	VendorID        kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Items           []OrderItemResponse
	Subtotal        int64
	DeliveryPrice   int64
	Total           int64
	Status          string
	PaymentMethod   string
	CreatedAt       time.Time
}

// OrderItemResponse is one snapshotted order line.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  int64
	Quantity   int
	LineTotal  int64
}

// scanOrders reads order header rows produced by the shared column list and
// attaches their item snapshots.
func scanOrders(ctx context.Context, db *gorm.DB, querySQL string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	headerRows, err := db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer headerRows.Close()

	for headerRows.Next() {
		var resp OrderResponse
		var id, customerID, vendorID uuid.UUID

		err = headerRows.Scan(
			&id,
			&customerID,
			&vendorID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.DeliveryAddress,
			&resp.Subtotal,
			&resp.DeliveryPrice,
			&resp.Total,
			&resp.Status,
			&resp.PaymentMethod,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = headerRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = scanOrderItems(ctx, db, orders[i].ID); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func scanOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			item_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID

		err = rows.Scan(
			&menuItemID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitPrice * int64(item.Quantity)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// orderColumns is the shared header column list for order queries.
const orderColumns = `
	id,
	customer_id,
	vendor_id,
	customer_name,
	customer_phone,
	delivery_address,
	subtotal,
	delivery_price,
	total,
	status,
	payment_method,
	created_at`

func singleOrder(orders []OrderResponse, id kernel.UUID) (OrderResponse, error) {
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", id)
	}
	return orders[0], nil
}
