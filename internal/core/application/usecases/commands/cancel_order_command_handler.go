package commands

import (
	"context"
	"errors"

	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/core/domain/services"
	"algexpress/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order together with its open payments
// and delivery assignment. Orders holding approved payments are flagged for
// refund orchestration.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      *OrderLocks
	ledger     services.PaymentLedger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, locks *OrderLocks) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		ledger:     services.NewPaymentLedger(),
	}
}

// Handle processes the order cancellation command.
// The order, its unsettled payments, and its delivery assignment are
// cancelled in one transaction.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	paymentRepo := uow.PaymentRepository()
	payments, err := paymentRepo.GetAllByOrder(ctx, target.ID())
	if err != nil {
		return err
	}

	if err = target.Cancel(h.ledger.HasApproved(payments)); err != nil {
		return err
	}

	for _, p := range payments {
		if p.Status() != payment.Pending && p.Status() != payment.Processing {
			continue
		}
		if err = p.Cancel(); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = h.cancelAssignment(ctx, uow, target, cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CancelOrderCommandHandler) cancelAssignment(ctx context.Context, uow UoW, target *order.Order, reason string) error {
	if target.Kind() != order.Delivery {
		return nil
	}

	deliveryRepo := uow.DeliveryRepository()
	assignment, err := deliveryRepo.GetByOrder(ctx, target.ID())
	if err != nil {
		// Pending orders have no assignment yet.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if assignment.Status().IsTerminal() {
		return nil
	}
	if err = assignment.Cancel(reason); err != nil {
		return err
	}

	return deliveryRepo.Update(ctx, assignment)
}
