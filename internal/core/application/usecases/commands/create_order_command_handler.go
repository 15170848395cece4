package commands

import (
	"context"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/services"
	"algexpress/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Lines are priced through the pricing engine against the catalog, and
// delivery orders get their fee from the delivery fee calculator.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	catalog       ports.CatalogLookup
	feeCalculator ports.DeliveryFeeCalculator
	pricing       services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogLookup,
	feeCalculator ports.DeliveryFeeCalculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		catalog:       catalog,
		feeCalculator: feeCalculator,
		pricing:       services.NewPricingEngine(),
	}
}

// Handle processes the order creation command.
// The order starts Pending with its requested lines priced against the
// catalog at creation time.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deliveryFee := kernel.Zero()
	if cmd.Kind() == order.Delivery {
		fee, err := h.feeCalculator.Calculate(ctx, cmd.Address())
		if err != nil {
			return err
		}
		deliveryFee = fee
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Kind(), deliveryFee, cmd.Note())
	if err != nil {
		return err
	}

	for _, input := range cmd.Lines() {
		if err = priceAndAddLine(ctx, h.catalog, h.pricing, newOrder, input); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
