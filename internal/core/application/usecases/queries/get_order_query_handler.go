package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order with its lines and
// settlement state from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The approved payment total is computed in the
// database so the read side never loads payment aggregates.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.kind,
			o.status,
			o.subtotal,
			o.delivery_fee,
			o.discount,
			o.total,
			o.note,
			o.ordered_at,
			COALESCE((
				SELECT SUM(p.amount_due)
				FROM payments p
				WHERE p.order_id = o.id AND p.status = ?
			), 0) AS approved_total
		FROM orders o
		WHERE o.id = ?
	`, int(payment.Approved), query.OrderID().Bytes()).Row()

	var (
		id, customerID                                     uuid.UUID
		kind, status                                       int
		subtotal, deliveryFee, discount, total, approvedTotal decimal.Decimal
	)
	err := row.Scan(
		&id, &customerID, &kind, &status,
		&subtotal, &deliveryFee, &discount, &total,
		&response.Note, &response.OrderedAt,
		&approvedTotal,
	)
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Kind = order.Kind(kind).String()
	response.Status = order.Status(status).String()
	response.Subtotal = kernel.NewMoney(subtotal)
	response.DeliveryFee = kernel.NewMoney(deliveryFee)
	response.Discount = kernel.NewMoney(discount)
	response.Total = kernel.NewMoney(total)
	response.ApprovedTotal = kernel.NewMoney(approvedTotal)
	response.FullyPaid = response.ApprovedTotal.GreaterOrEqual(response.Total)

	response.Lines, err = h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryLineResponse, error) {
	lines := make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			size,
			quantity,
			unit_price,
			total
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line             GetOrderQueryLineResponse
			id               uuid.UUID
			size             int
			unitPrice, total decimal.Decimal
		)

		err = rows.Scan(&id, &line.ItemName, &size, &line.Quantity, &unitPrice, &total)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID
		line.Size = menu.Size(size).String()
		line.UnitPrice = kernel.NewMoney(unitPrice)
		line.Total = kernel.NewMoney(total)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
