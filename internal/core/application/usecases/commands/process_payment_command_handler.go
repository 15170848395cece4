package commands

import (
	"context"

	"algexpress/internal/core/domain/services"
	"algexpress/internal/pkg/errs"
)

// ProcessPaymentCommandHandler settles a recorded payment.
//
// Processing is serialized per order so two concurrent settlements cannot
// both pass the fully-paid check: once the approved payments cover the order
// total, further processing is rejected.
type ProcessPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	locks      *OrderLocks
	ledger     services.PaymentLedger
}

// NewProcessPaymentCommandHandler creates a handler for payment processing operations.
func NewProcessPaymentCommandHandler(uowFactory OrderPaymentUoWFactory, locks *OrderLocks) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		ledger:     services.NewPaymentLedger(),
	}
}

// Handle processes the payment settlement command.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	target, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	h.locks.Lock(target.OrderID())
	defer h.locks.Unlock(target.OrderID())

	settled, err := uow.OrderRepository().Get(ctx, target.OrderID())
	if err != nil {
		return err
	}

	payments, err := paymentRepo.GetAllByOrder(ctx, target.OrderID())
	if err != nil {
		return err
	}
	if h.ledger.IsFullyPaid(settled, payments) {
		return errs.NewPaymentNotProcessableError("order is already fully paid")
	}

	if err = target.Process(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
