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
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/pkg/errs"
)

func TestCancelOrderCommandHandler_Handle_CancelsOpenPaymentsAndAssignment(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)
	require.NoError(t, testOrder.Confirm())
	openPayment := pendingCashPayment(t, orderID, "40.90", "50.00")
	assignment := waitingAssignment(t, orderID)

	cmd, err := commands.NewCancelOrderCommand(orderID, "customer changed their mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetAllByOrder", ctx, orderID).
			Return([]*payment.Payment{openPayment}, nil).Once(),
		paymentRepo.On("Update", ctx, openPayment).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrder", ctx, orderID).Return(assignment, nil).Once(),
		deliveryRepo.On("Update", ctx, assignment).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.False(t, testOrder.RequiresRefund())
	assert.Equal(t, payment.Cancelled, openPayment.Status())
	assert.Equal(t, delivery.Cancelled, assignment.Status())
	assert.Equal(t, "customer changed their mind", assignment.CancellationReason())
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ApprovedPaymentFlagsRefund(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingPickupOrder(t, orderID)
	approved := pendingCashPayment(t, orderID, "32.90", "32.90")
	require.NoError(t, approved.Process())

	cmd, err := commands.NewCancelOrderCommand(orderID, "kitchen out of stock")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetAllByOrder", ctx, orderID).
			Return([]*payment.Payment{approved}, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.RequiresRefund())
	assert.Equal(t, payment.Approved, approved.Status())
	paymentRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "DeliveryRepository")
}

func TestCancelOrderCommandHandler_Handle_MissingAssignmentIsTolerated(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := pendingDeliveryOrder(t, orderID)

	cmd, err := commands.NewCancelOrderCommand(orderID, "duplicate order")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetAllByOrder", ctx, orderID).Return([]*payment.Payment{}, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByOrder", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, commands.NewOrderLocks())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	deliveryRepo.AssertNotCalled(t, "Update")
}
