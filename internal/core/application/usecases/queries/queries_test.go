package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCartQuery(t *testing.T) {
	customerID := kernel.NewUUID()
	q, err := queries.NewGetCartQuery(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, q.CustomerID())

	_, err = queries.NewGetCartQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetCartQuery_Validate_ZeroValue(t *testing.T) {
	q := queries.GetCartQuery{}
	require.ErrorIs(t, q.Validate(), queries.ErrGetCartQueryIsNotConstructed)
}

func TestNewGetCustomerOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	q, err := queries.NewGetCustomerOrderQuery(orderID, customerID)
	require.NoError(t, err)
	assert.Equal(t, orderID, q.OrderID())
	assert.Equal(t, customerID, q.CustomerID())

	_, err = queries.NewGetCustomerOrderQuery(kernel.UUID{}, customerID)
	require.Error(t, err)
}

func TestNewGetVendorOrdersQuery(t *testing.T) {
	vendorID := kernel.NewUUID()
	q, err := queries.NewGetVendorOrdersQuery(vendorID, "Pending")
	require.NoError(t, err)
	assert.Equal(t, vendorID, q.VendorID())
	assert.Equal(t, "Pending", q.Status())

	q, err = queries.NewGetVendorOrdersQuery(vendorID, "")
	require.NoError(t, err)
	assert.Empty(t, q.Status())
}

func TestNewGetVendorMenuQuery(t *testing.T) {
	vendorID := kernel.NewUUID()
	q, err := queries.NewGetVendorMenuQuery(vendorID, true)
	require.NoError(t, err)
	assert.True(t, q.OnlyAvailable())
}

func TestNewGetVendorQuery(t *testing.T) {
	vendorID := kernel.NewUUID()
	q, err := queries.NewGetVendorQuery(vendorID)
	require.NoError(t, err)
	assert.Equal(t, vendorID, q.VendorID())

	_, err = queries.NewGetVendorQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetCustomerProfileQuery(t *testing.T) {
	customerID := kernel.NewUUID()
	q, err := queries.NewGetCustomerProfileQuery(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, q.CustomerID())

	_, err = queries.NewGetCustomerProfileQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetVendorsQuery(t *testing.T) {
	q := queries.NewGetVendorsQuery()
	require.NoError(t, q.Validate())

	zero := queries.GetVendorsQuery{}
	require.ErrorIs(t, zero.Validate(), queries.ErrGetVendorsQueryIsNotConstructed)
}

func TestNewAuthenticateCustomerQuery(t *testing.T) {
	q, err := queries.NewAuthenticateCustomerQuery("  Alice@Example.COM ", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", q.Email())

	_, err = queries.NewAuthenticateCustomerQuery("", "s3cretpass")
	require.ErrorIs(t, err, queries.ErrCredentialsAreRequired)

	_, err = queries.NewAuthenticateCustomerQuery("alice@example.com", "")
	require.ErrorIs(t, err, queries.ErrCredentialsAreRequired)
}
