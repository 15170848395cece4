package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler retrieves all non-terminal orders from the
// database, oldest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Delivered and cancelled orders are excluded.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			kind,
			status,
			total,
			ordered_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY ordered_at
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           GetActiveOrdersQueryResponse
			id, customerID uuid.UUID
			kind, status   int
			total          decimal.Decimal
		)

		err = rows.Scan(&id, &customerID, &kind, &status, &total, &resp.OrderedAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		buyerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = buyerID

		resp.Kind = order.Kind(kind).String()
		resp.Status = order.Status(status).String()
		resp.Total = kernel.NewMoney(total)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
