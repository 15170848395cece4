package commands

import (
	"context"

	"algexpress/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler moves an order through the kitchen and dispatch
// steps. Dispatching a delivery order also marks its assignment en route,
// which requires a courier to be assigned already.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	locks      *OrderLocks
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement operations.
func NewAdvanceOrderCommandHandler(uowFactory OrderDeliveryUoWFactory, locks *OrderLocks) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the order advancement command.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	switch cmd.Next() {
	case order.Preparing:
		err = target.StartPreparing()
	case order.Ready:
		err = target.MarkReady()
	case order.OutForDelivery:
		err = h.dispatch(ctx, uow, target)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AdvanceOrderCommandHandler) dispatch(ctx context.Context, uow OrderDeliveryUoW, target *order.Order) error {
	if err := target.Dispatch(); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	assignment, err := deliveryRepo.GetByOrder(ctx, target.ID())
	if err != nil {
		return err
	}

	if err = assignment.Depart(); err != nil {
		return err
	}

	return deliveryRepo.Update(ctx, assignment)
}
