package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/payment"
)

// GetOrderPaymentsQueryHandler retrieves the payment history of an order
// from the database, oldest first.
type GetOrderPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderPaymentsQueryHandler creates a handler for payment history
// queries.
func NewGetOrderPaymentsQueryHandler(db *gorm.DB) GetOrderPaymentsQueryHandler {
	return GetOrderPaymentsQueryHandler{db: db}
}

// Handle executes the query. An order with no payments yields an empty
// slice, not an error.
func (h GetOrderPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPaymentsQuery,
) ([]GetOrderPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetOrderPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			method,
			status,
			amount_due,
			change,
			recorded_at,
			paid_at
		FROM payments
		WHERE order_id = ?
		ORDER BY recorded_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp              GetOrderPaymentsQueryResponse
			id                uuid.UUID
			method, status    int
			amountDue, change decimal.Decimal
		)

		err = rows.Scan(&id, &method, &status, &amountDue, &change, &resp.RecordedAt, &resp.PaidAt)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = paymentID
		resp.Method = payment.Method(method).String()
		resp.Status = payment.Status(status).String()
		resp.AmountDue = kernel.NewMoney(amountDue)
		resp.Change = kernel.NewMoney(change)

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
