package ports

import (
	"context"

	"algexpress/internal/core/domain/model/kernel"
)

// DeliveryFeeCalculator resolves the delivery fee for a destination address.
// Zone pricing lives outside the ordering core.
type DeliveryFeeCalculator interface {
	// Calculate returns the fee for delivering to the given address.
	Calculate(ctx context.Context, address string) (kernel.Money, error)
}

// CourierDirectory resolves an available courier for a waiting delivery
// assignment. Courier management is an external system.
type CourierDirectory interface {
	// GetAvailableCourier returns the identifier of a courier free to take
	// an assignment. Returns an ObjectNotFoundError when nobody is free.
	GetAvailableCourier(ctx context.Context) (kernel.UUID, error)
}
