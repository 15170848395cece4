package commands

import (
	"context"

	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler confirms a pending order. Confirming a delivery
// order also opens its delivery assignment, waiting for a courier.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	locks      *OrderLocks
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation operations.
func NewConfirmOrderCommandHandler(uowFactory OrderDeliveryUoWFactory, locks *OrderLocks) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the order confirmation command.
// The order and its delivery assignment are persisted in one transaction.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locks.Lock(cmd.OrderID())
	defer h.locks.Unlock(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if target.Kind() == order.Delivery {
		assignment, assignErr := delivery.NewAssignment(kernel.NewUUID(), target.ID(), target.DeliveryFee())
		if assignErr != nil {
			return assignErr
		}
		if err = uow.DeliveryRepository().Add(ctx, assignment); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
