// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Totals derived from the line list (subtotal, total) are stored denormalized
// for the read side; the aggregate recomputes them on restore.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;index"`
	Kind           int             `gorm:"index"`
	Status         int             `gorm:"index"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryFee    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Discount       decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2)"`
	Note           string
	OrderedAt      time.Time
	ConfirmedAt    *time.Time
	CompletedAt    *time.Time
	RequiresRefund bool
	Lines          []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents a single order line row. Modifier identifier sets are
// stored as postgres text arrays.
type LineDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID       `gorm:"type:uuid;index"`
	ItemID             uuid.UUID       `gorm:"type:uuid"`
	ItemName           string
	Size               int
	Quantity           int
	AddedModifierIDs   pq.StringArray  `gorm:"type:text[]"`
	RemovedModifierIDs pq.StringArray  `gorm:"type:text[]"`
	Note               string
	UnitPrice          decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total              decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, lineFromDomain(aggregate.ID(), line))
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Kind:           int(aggregate.Kind()),
		Status:         int(aggregate.Status()),
		Subtotal:       aggregate.Subtotal().Amount(),
		DeliveryFee:    aggregate.DeliveryFee().Amount(),
		Discount:       aggregate.Discount().Amount(),
		Total:          aggregate.Total().Amount(),
		Note:           aggregate.Note(),
		OrderedAt:      aggregate.OrderedAt(),
		ConfirmedAt:    aggregate.ConfirmedAt(),
		CompletedAt:    aggregate.CompletedAt(),
		RequiresRefund: aggregate.RequiresRefund(),
		Lines:          lines,
	}
}

func lineFromDomain(orderID kernel.UUID, line *order.Line) LineDTO {
	return LineDTO{
		ID:                 line.ID().Bytes(),
		OrderID:            orderID.Bytes(),
		ItemID:             line.ItemID().Bytes(),
		ItemName:           line.ItemName(),
		Size:               int(line.Size()),
		Quantity:           line.Quantity(),
		AddedModifierIDs:   uuidStrings(line.AddedModifierIDs()),
		RemovedModifierIDs: uuidStrings(line.RemovedModifierIDs()),
		Note:               line.Note(),
		UnitPrice:          line.UnitPrice().Amount(),
		Total:              line.Total().Amount(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, customerID,
		order.Kind(dto.Kind),
		lines,
		kernel.NewMoney(dto.DeliveryFee),
		kernel.NewMoney(dto.Discount),
		order.Status(dto.Status),
		dto.Note,
		dto.OrderedAt,
		dto.ConfirmedAt,
		dto.CompletedAt,
		dto.RequiresRefund,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	added, err := uuidValues(dto.AddedModifierIDs)
	if err != nil {
		return nil, err
	}
	removed, err := uuidValues(dto.RemovedModifierIDs)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(
		id, itemID, dto.ItemName,
		menu.Size(dto.Size),
		dto.Quantity,
		added, removed,
		dto.Note,
		kernel.NewMoney(dto.UnitPrice),
		kernel.NewMoney(dto.Total),
	)
}

func uuidStrings(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func uuidValues(raw pq.StringArray) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
