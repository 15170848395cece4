package commands

import (
	"context"

	"algexpress/internal/core/domain/model/customer"
	"algexpress/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler marks an order delivered, closes its delivery
// assignment, and accrues loyalty points for the customer.
//
// The accrual runs exactly once per order: a Delivered order rejects any
// further completion attempt before the balance is touched.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      *OrderLocks
}

// NewCompleteOrderCommandHandler creates a handler for order completion operations.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, locks *OrderLocks) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the order completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = target.MarkDelivered(); err != nil {
		return err
	}

	if target.Kind() == order.Delivery {
		if err = h.completeAssignment(ctx, uow, target); err != nil {
			return err
		}
	}

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.Get(ctx, target.CustomerID())
	if err != nil {
		return err
	}

	buyer.Accrue(customer.PointsEarned(target.Total()))
	if err = customerRepo.Update(ctx, buyer); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CompleteOrderCommandHandler) completeAssignment(ctx context.Context, uow UoW, target *order.Order) error {
	deliveryRepo := uow.DeliveryRepository()
	assignment, err := deliveryRepo.GetByOrder(ctx, target.ID())
	if err != nil {
		return err
	}

	if err = assignment.MarkDelivered(); err != nil {
		return err
	}

	return deliveryRepo.Update(ctx, assignment)
}
