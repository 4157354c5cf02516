package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func snapshot() order.CustomerSnapshot {
	return order.CustomerSnapshot{
		Name:    "Ada",
		Phone:   "555-0101",
		Address: "12 Baker Street",
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("computes subtotal and total from item snapshots", func(t *testing.T) {
		itemA, err := order.NewItem(kernel.NewUUID(), "Shawarma", money(t, 120), 2)
		require.NoError(t, err)
		itemB, err := order.NewItem(kernel.NewUUID(), "Lemonade", money(t, 80), 1)
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			snapshot(), []order.Item{itemA, itemB}, money(t, 40),
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(320), o.Subtotal().Amount())
		assert.Equal(t, int64(40), o.DeliveryPrice().Amount())
		assert.Equal(t, int64(360), o.Total().Amount())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentCashOnDelivery, o.PaymentMethod())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			snapshot(), nil, money(t, 40),
		)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects incomplete customer snapshot", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Shawarma", money(t, 120), 1)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.CustomerSnapshot{Name: "Ada"}, []order.Item{item}, money(t, 0),
		)

		require.Error(t, err)
	})

	t.Run("items are copied, not aliased", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Shawarma", money(t, 120), 1)
		require.NoError(t, err)
		src := []order.Item{item}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			snapshot(), src, money(t, 0),
		)
		require.NoError(t, err)

		src[0] = order.Item{}
		assert.Equal(t, "Shawarma", o.Items()[0].Name())
	})
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Falafel", money(t, 60), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(180), item.Total().Amount())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", money(t, 60), 1)
		require.Error(t, err)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Falafel", money(t, 60), 0)
		require.Error(t, err)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("walks the full chain", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.AdvanceTo(order.Preparing))
		require.NoError(t, o.AdvanceTo(order.OutForDelivery))
		require.NoError(t, o.AdvanceTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())

		err := o.AdvanceTo(order.Delivered)
		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejected transition leaves the status unchanged", func(t *testing.T) {
		o := placedOrder(t)

		err := o.AdvanceTo(order.Delivered)

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), "Shawarma", money(t, 120), 2)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		snapshot(), []order.Item{item}, money(t, 40),
		order.OutForDelivery, order.PaymentCashOnDelivery,
	)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, o.Status())

	_, err = order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		snapshot(), []order.Item{item}, money(t, 40),
		order.Unknown, order.PaymentCashOnDelivery,
	)
	require.Error(t, err)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Shawarma", money(t, 120), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		snapshot(), []order.Item{item}, money(t, 0),
	)
	require.NoError(t, err)
	return o
}
