package commands

import (
	"context"
)

// RemoveOrderLineCommandHandler drops a line from a pending order and lets
// the aggregate recompute its totals.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *OrderLocks
}

// NewRemoveOrderLineCommandHandler creates a handler for line removal operations.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory, locks *OrderLocks) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the line removal command.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
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

	if err = target.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
