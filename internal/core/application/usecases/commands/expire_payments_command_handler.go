package commands

import (
	"context"
	"time"
)

// ExpirePaymentsCommandHandler cancels payments that stayed Pending past
// their allowed age. Run periodically by the payment expiry job.
type ExpirePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewExpirePaymentsCommandHandler creates a handler for payment expiry operations.
func NewExpirePaymentsCommandHandler(uowFactory PaymentUoWFactory) ExpirePaymentsCommandHandler {
	return ExpirePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment expiry command.
// Every stale pending payment is cancelled in one transaction.
func (h *ExpirePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePaymentsCommand) error {
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
	cutoff := time.Now().Add(-cmd.MaxAge())
	stale, err := paymentRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, p := range stale {
		if err = p.Cancel(); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
