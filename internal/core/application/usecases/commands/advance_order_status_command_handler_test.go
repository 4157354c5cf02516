package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, vendorID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(150)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Carbonara", price, 2)
	require.NoError(t, err)
	snapshot := order.CustomerSnapshot{Name: "Alice", Phone: "+3161234567", Address: "Canal St 1"}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vendorID, snapshot, []order.Item{item}, kernel.Zero())
	require.NoError(t, err)
	return o
}

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	o := newTestOrder(t, vendorID)

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), vendorID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForVendor", mock.Anything, o.ID(), vendorID).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*order.Order"), order.Pending).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*order.Order)
				assert.Equal(t, order.Preparing, updated.Status())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	o := newTestOrder(t, vendorID)

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), vendorID, order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForVendor", mock.Anything, o.ID(), vendorID).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *order.IllegalTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Pending, transitionErr.Current)
	assert.Equal(t, order.Delivered, transitionErr.Requested)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceOrderStatusCommandHandler_Handle_WrongVendor(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, vendorID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForVendor", mock.Anything, orderID, vendorID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceOrderStatusCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	o := newTestOrder(t, vendorID)

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), vendorID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForVendor", mock.Anything, o.ID(), vendorID).Return(o, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(errs.NewObjectNotFoundError("order", o.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
