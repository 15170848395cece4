// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery assignment persistence.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments.
type AssignmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CourierID          *uuid.UUID `gorm:"type:uuid;index"`
	Status             int        `gorm:"index"`
	Attempts           int
	CreatedAt          time.Time
	DepartureTime      *time.Time
	DeliveryTime       *time.Time
	ReturnTime         *time.Time
	CancellationReason string
	DeliveryFee        decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

func fromDomain(aggregate *delivery.Assignment) AssignmentDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return AssignmentDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		CourierID:          courierID,
		Status:             int(aggregate.Status()),
		Attempts:           aggregate.Attempts(),
		CreatedAt:          aggregate.CreatedAt(),
		DepartureTime:      aggregate.DepartureTime(),
		DeliveryTime:       aggregate.DeliveryTime(),
		ReturnTime:         aggregate.ReturnTime(),
		CancellationReason: aggregate.CancellationReason(),
		DeliveryFee:        aggregate.DeliveryFee().Amount(),
	}
}

func toDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return delivery.RestoreAssignment(
		id, orderID, courierID,
		delivery.Status(dto.Status),
		dto.Attempts,
		dto.CreatedAt,
		dto.DepartureTime,
		dto.DeliveryTime,
		dto.ReturnTime,
		dto.CancellationReason,
		kernel.NewMoney(dto.DeliveryFee),
	)
}
