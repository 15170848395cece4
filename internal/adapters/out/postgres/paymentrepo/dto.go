// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;index"`
	Method            int
	Status            int             `gorm:"index"`
	AmountDue         decimal.Decimal `gorm:"type:decimal(12,2)"`
	Tendered          decimal.Decimal `gorm:"type:decimal(12,2)"`
	Change            decimal.Decimal `gorm:"type:decimal(12,2)"`
	TransactionID     string
	AuthorizationCode string
	RecordedAt        time.Time `gorm:"index"`
	PaidAt            *time.Time
	Note              string
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		Method:            int(aggregate.Method()),
		Status:            int(aggregate.Status()),
		AmountDue:         aggregate.AmountDue().Amount(),
		Tendered:          aggregate.Tendered().Amount(),
		Change:            aggregate.Change().Amount(),
		TransactionID:     aggregate.AuthorizationRef().TransactionID(),
		AuthorizationCode: aggregate.AuthorizationRef().AuthorizationCode(),
		RecordedAt:        aggregate.RecordedAt(),
		PaidAt:            aggregate.PaidAt(),
		Note:              aggregate.Note(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		kernel.NewMoney(dto.AmountDue),
		kernel.NewMoney(dto.Tendered),
		kernel.NewMoney(dto.Change),
		payment.NewAuthorizationRef(dto.TransactionID, dto.AuthorizationCode),
		dto.RecordedAt,
		dto.PaidAt,
		dto.Note,
	)
}
