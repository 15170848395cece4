package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"algexpress/internal/core/application/usecases/commands"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := testItem(t)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery, "Rua Augusta 1500", "",
		[]commands.LineInput{{ItemID: item.ID(), Size: menu.Medium, Quantity: 2}},
	)
	require.NoError(t, err)

	catalog := new(MockCatalogLookup)
	catalog.On("GetItem", ctx, item.ID()).Return(item, nil).Once()

	feeCalculator := new(MockDeliveryFeeCalculator)
	feeCalculator.On("Calculate", ctx, "Rua Augusta 1500").Return(money(t, "8.00"), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Total().IsEqual(money(t, "73.80")) && len(o.Lines()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, feeCalculator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	feeCalculator.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, new(MockCatalogLookup), new(MockDeliveryFeeCalculator))
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_FeeCalculatorError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery, "Rua Augusta 1500", "", nil,
	)
	require.NoError(t, err)

	feeCalculator := new(MockDeliveryFeeCalculator)
	feeCalculator.On("Calculate", ctx, "Rua Augusta 1500").
		Return(kernel.Money{}, errors.New("zone service unavailable")).Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, new(MockCatalogLookup), feeCalculator)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "zone service unavailable")
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_PickupSkipsFeeCalculation(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Pickup, "", "", nil,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	feeCalculator := new(MockDeliveryFeeCalculator)

	handler := commands.NewCreateOrderCommandHandler(factory, new(MockCatalogLookup), feeCalculator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	feeCalculator.AssertNotCalled(t, "Calculate")
	uow.AssertExpectations(t)
}
