package ports

import (
	"context"

	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// assignments.
type DeliveryRepository interface {
	// Add persists a new delivery assignment.
	Add(ctx context.Context, aggregate *delivery.Assignment) error

	// Update persists changes to an existing delivery assignment.
	Update(ctx context.Context, aggregate *delivery.Assignment) error

	// Get retrieves a delivery assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Assignment, error)

	// GetByOrder retrieves the assignment created for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error)

	// GetFirstWaiting retrieves the oldest assignment still waiting for a
	// courier. Used by the courier assignment job.
	GetFirstWaiting(ctx context.Context) (*delivery.Assignment, error)
}
