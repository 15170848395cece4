package commands

import (
	"context"

	"algexpress/internal/core/domain/model/customer"
)

// RedeemLoyaltyPointsCommandHandler spends loyalty points as a discount on a
// pending order. The balance deduction and the order discount land in the
// same transaction: a failed redemption leaves both untouched.
type RedeemLoyaltyPointsCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	locks      *OrderLocks
}

// NewRedeemLoyaltyPointsCommandHandler creates a handler for loyalty redemption operations.
func NewRedeemLoyaltyPointsCommandHandler(uowFactory OrderCustomerUoWFactory, locks *OrderLocks) RedeemLoyaltyPointsCommandHandler {
	return RedeemLoyaltyPointsCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the loyalty redemption command.
func (h *RedeemLoyaltyPointsCommandHandler) Handle(ctx context.Context, cmd RedeemLoyaltyPointsCommand) error {
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

	customerRepo := uow.CustomerRepository()
	buyer, err := customerRepo.Get(ctx, target.CustomerID())
	if err != nil {
		return err
	}

	if err = buyer.Redeem(cmd.Points()); err != nil {
		return err
	}

	discount := target.Discount().Add(customer.RedemptionDiscount(cmd.Points()))
	if err = target.ApplyLoyaltyDiscount(discount); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, buyer); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
