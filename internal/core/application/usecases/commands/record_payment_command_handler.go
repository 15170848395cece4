package commands

import (
	"context"

	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/pkg/errs"
)

// RecordPaymentCommandHandler records a Pending payment against an open
// order.
type RecordPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	locks      *OrderLocks
}

// NewRecordPaymentCommandHandler creates a handler for payment recording operations.
func NewRecordPaymentCommandHandler(uowFactory OrderPaymentUoWFactory, locks *OrderLocks) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the payment recording command.
// The order must exist and still be open; payments against delivered or
// cancelled orders are rejected.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if target.Status().IsTerminal() {
		return errs.NewPaymentNotProcessableError("order is closed")
	}

	newPayment, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Method(), cmd.Amount(), cmd.Note())
	if err != nil {
		return err
	}

	if cmd.Method().RequiresChange() && cmd.Tendered().IsPositive() {
		if err = newPayment.RecordTendered(cmd.Tendered()); err != nil {
			return err
		}
	}
	if !cmd.AuthorizationRef().IsEmpty() {
		if err = newPayment.Authorize(cmd.AuthorizationRef()); err != nil {
			return err
		}
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
