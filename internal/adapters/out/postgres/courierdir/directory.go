// Package courierdir resolves available couriers from the courier roster
// table. Courier management itself lives outside the ordering service; this
// adapter only answers "who is free right now".
package courierdir

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"algexpress/internal/core/domain/model/delivery"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/ports"
	"algexpress/internal/pkg/errs"
)

// CourierDTO represents the database structure for the courier roster.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

var _ ports.CourierDirectory = &GormCourierDirectory{}

// GormCourierDirectory implements CourierDirectory using GORM.
type GormCourierDirectory struct {
	db *gorm.DB
}

// NewGormCourierDirectory creates a courier directory backed by the roster table.
func NewGormCourierDirectory(db *gorm.DB) (*GormCourierDirectory, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}

	return &GormCourierDirectory{db: db}, nil
}

// GetAvailableCourier returns an active courier who is not attached to any
// open delivery assignment. Couriers are considered busy from the moment an
// assignment names them until the assignment reaches a terminal status.
func (d *GormCourierDirectory) GetAvailableCourier(ctx context.Context) (kernel.UUID, error) {
	var dto CourierDTO

	result := d.db.WithContext(ctx).
		Where("active = ?", true).
		Where(`NOT EXISTS (
			SELECT 1 FROM delivery_assignments a
			WHERE a.courier_id = couriers.id AND a.status IN ?
		)`, []int{int(delivery.WaitingForCourier), int(delivery.EnRoute), int(delivery.DeliveryAttempt)}).
		Order("name").
		First(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("available courier", nil)
		}
		return kernel.UUID{}, result.Error
	}

	return kernel.UUIDFromBytes(dto.ID[:])
}
