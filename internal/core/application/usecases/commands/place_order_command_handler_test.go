package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	cust := newTestCustomer(t, customerID)
	vend := newTestVendor(t, vendorID, 40)
	item := newTestMenuItem(t, vendorID, 160)
	activeCart := newTestCartWith(t, customerID, item.ID(), 2)

	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	menuRepo := new(MockMenuItemRepository)
	vendorRepo := new(MockVendorRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(cust, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, customerID).Return(activeCart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", mock.Anything, vendorID).Return(vend, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed := args.Get(1).(*order.Order)
				assert.True(t, placed.ID().IsEqual(orderID))
				assert.Equal(t, order.Pending, placed.Status())
				assert.Equal(t, int64(320), placed.Subtotal().Amount())
				assert.Equal(t, int64(360), placed.Total().Amount())
			}).Return(nil).Once(),
		cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).
			Run(func(args mock.Arguments) {
				saved := args.Get(1).(*cart.Cart)
				assert.True(t, saved.IsEmpty())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewOrderFactory())
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MissingCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cust := newTestCustomer(t, customerID)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(cust, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewOrderFactory())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrCartIsEmpty)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cust := newTestCustomer(t, customerID)
	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(cust, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewOrderFactory())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrCartIsEmpty)
	cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewOrderFactory())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
