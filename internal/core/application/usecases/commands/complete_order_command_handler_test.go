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

func enRouteAssignment(t *testing.T, orderID kernel.UUID) *delivery.Assignment {
	t.Helper()
	a, err := delivery.NewAssignment(kernel.NewUUID(), orderID, money(t, "8.00"))
	require.NoError(t, err)
	require.NoError(t, a.AssignCourier(kernel.NewUUID()))
	require.NoError(t, a.Depart())
	return a
}

func TestCompleteOrderCommandHandler_Handle_DeliverySuccess(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartPreparing())
	require.NoError(t, testOrder.MarkReady())
	require.NoError(t, testOrder.Dispatch())
	assignment := enRouteAssignment(t, orderID)
	buyer := testCustomer(t, 10)

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrder", ctx, orderID).Return(assignment, nil).Once(),
		deliveryRepo.On("Update", ctx, assignment).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testOrder.CustomerID()).Return(buyer, nil).Once(),
		customerRepo.On("Update", ctx, buyer).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.Equal(t, delivery.Delivered, assignment.Status())
	// 40.90 total earns 4 points on top of the starting 10.
	assert.Equal(t, 14, buyer.LoyaltyPoints())
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_PickupSkipsAssignment(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingPickupOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartPreparing())
	require.NoError(t, testOrder.MarkReady())
	buyer := testCustomer(t, 0)

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testOrder.CustomerID()).Return(buyer, nil).Once(),
		customerRepo.On("Update", ctx, buyer).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.Equal(t, 3, buyer.LoyaltyPoints())
	uow.AssertNotCalled(t, "DeliveryRepository")
}

func TestCompleteOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingPickupOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	require.NoError(t, testOrder.StartPreparing())
	require.NoError(t, testOrder.MarkReady())
	require.NoError(t, testOrder.MarkDelivered())

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "CustomerRepository")
	uow.AssertNotCalled(t, "Commit")
}
