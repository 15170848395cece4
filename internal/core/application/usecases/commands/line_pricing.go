package commands

import (
	"context"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/services"
	"algexpress/internal/core/ports"
)

// priceAndAddLine resolves the item, prices the requested customization, and
// appends the resulting line to the order. Shared by the order creation and
// line addition handlers.
func priceAndAddLine(
	ctx context.Context,
	catalog ports.CatalogLookup,
	pricing services.PricingEngine,
	o *order.Order,
	input LineInput,
) error {
	item, err := catalog.GetItem(ctx, input.ItemID)
	if err != nil {
		return err
	}

	unitPrice, _, err := pricing.PriceLine(
		item, input.Size, input.AddedModifierIDs, input.RemovedModifierIDs, input.Quantity,
	)
	if err != nil {
		return err
	}

	line, err := order.NewLine(
		kernel.NewUUID(), item.ID(), item.Name(), input.Size, input.Quantity,
		input.AddedModifierIDs, input.RemovedModifierIDs, input.Note, unitPrice,
	)
	if err != nil {
		return err
	}

	return o.AddLine(line)
}
