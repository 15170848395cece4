package queries

import (
	"errors"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/guard"
)

var ErrGetOrderPaymentsQueryIsNotConstructed = errors.New(
	"GetOrderPaymentsQuery must be created via NewGetOrderPaymentsQuery constructor",
)

// GetOrderPaymentsQuery retrieves the payment history of an order.
type GetOrderPaymentsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderPaymentsQuery creates a query to retrieve an order's payments.
func NewGetOrderPaymentsQuery(orderID kernel.UUID) (GetOrderPaymentsQuery, error) {
	q := GetOrderPaymentsQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderPaymentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPaymentsQueryIsNotConstructed)
}

// OrderID returns the settled order's identifier.
func (q GetOrderPaymentsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderPaymentsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderPaymentsQueryResponse represents one payment recorded against the
// order.
type GetOrderPaymentsQueryResponse struct {
	ID         kernel.UUID
	Method     string
	Status     string
	AmountDue  kernel.Money
	Change     kernel.Money
	RecordedAt time.Time
	PaidAt     *time.Time
}
