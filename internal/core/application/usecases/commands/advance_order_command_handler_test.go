package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"algexpress/internal/core/application/usecases/commands"
	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/pkg/errs"
)

func TestAdvanceOrderCommandHandler_Handle_StartPreparing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Preparing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, testOrder.Status())
	uow.AssertNotCalled(t, "DeliveryRepository")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_DispatchDepartsAssignment(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartPreparing())
	require.NoError(t, testOrder.MarkReady())

	assignment := waitingAssignment(t, orderID)
	require.NoError(t, assignment.AssignCourier(kernel.NewUUID()))

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.OutForDelivery)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrder", ctx, orderID).Return(assignment, nil).Once(),
		deliveryRepo.On("Update", ctx, assignment).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, testOrder.Status())
	assert.Equal(t, delivery.EnRoute, assignment.Status())
	require.NotNil(t, assignment.DepartureTime())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_DispatchWithoutCourier(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartPreparing())
	require.NoError(t, testOrder.MarkReady())

	assignment := waitingAssignment(t, orderID)

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.OutForDelivery)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrder", ctx, orderID).Return(assignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrCourierNotAssigned)
	assert.Equal(t, delivery.WaitingForCourier, assignment.Status())
	deliveryRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestAdvanceOrderCommandHandler_Handle_SkippedStep(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)

	cmd, err := commands.NewAdvanceOrderCommand(orderID, order.Ready)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, testOrder.Status())
	uow.AssertNotCalled(t, "Commit")
}
