package commands_test

import (
	"testing"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
)

func newTestMenuItem(t *testing.T, vendorID kernel.UUID, priceAmount int64) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoney(priceAmount)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), vendorID, "Margherita", "", price, "Pizza")
	require.NoError(t, err)
	return item
}

func newTestCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	cust, err := customer.NewCustomer(id, "Alice", "alice@example.com", "+3161234567", "Canal St 1", "hash")
	require.NoError(t, err)
	return cust
}

func newTestVendor(t *testing.T, id kernel.UUID, deliveryAmount int64) *vendor.Vendor {
	t.Helper()
	vend, err := vendor.NewVendor(id, "Luigi's", "Luigi", "luigi@example.com", "+3167654321", "Dam 2", "hash")
	require.NoError(t, err)
	price, err := kernel.NewMoney(deliveryAmount)
	require.NoError(t, err)
	require.NoError(t, vend.SetDeliveryPrice(price))
	return vend
}

func newTestCartWith(t *testing.T, customerID kernel.UUID, menuItemID kernel.UUID, quantity int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(menuItemID, quantity))
	return c
}
