// Package queries implements the read side of the ordering application.
// Query handlers bypass the aggregates and read the database directly,
// returning flat response models for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines, totals and
// settlement state.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse represents one order for the read side. ApprovedTotal
// sums the approved payments; FullyPaid reports whether they cover Total.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	Kind           string
	Status         string
	Subtotal       kernel.Money
	DeliveryFee    kernel.Money
	Discount       kernel.Money
	Total          kernel.Money
	ApprovedTotal  kernel.Money
	FullyPaid      bool
	Note           string
	OrderedAt      time.Time
	Lines          []GetOrderQueryLineResponse
}

// GetOrderQueryLineResponse represents one order line for the read side.
type GetOrderQueryLineResponse struct {
	ID        kernel.UUID
	ItemName  string
	Size      string
	Quantity  int
	UnitPrice kernel.Money
	Total     kernel.Money
}
