package ports

import (
	"context"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	// Add persists a newly recorded payment.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetAllByOrder retrieves every payment recorded against an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetAllPendingOlderThan retrieves pending payments recorded at or
	// before the given cutoff. Used by the payment expiry job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
