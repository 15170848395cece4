package commands

import (
	"context"

	"algexpress/internal/core/domain/services"
	"algexpress/internal/core/ports"
)

// AddOrderLineCommandHandler prices a requested line against the catalog and
// appends it to a pending order.
type AddOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogLookup
	locks      *OrderLocks
	pricing    services.PricingEngine
}

// NewAddOrderLineCommandHandler creates a handler for line addition operations.
func NewAddOrderLineCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogLookup,
	locks *OrderLocks,
) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		locks:      locks,
		pricing:    services.NewPricingEngine(),
	}
}

// Handle processes the line addition command. The order must still be
// Pending; the line list is frozen once the order is confirmed.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	if err = priceAndAddLine(ctx, h.catalog, h.pricing, target, cmd.Line()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
