// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence, including the loyalty balance.
package customerrepo

import (
	"github.com/google/uuid"

	"algexpress/internal/core/domain/model/customer"
	"algexpress/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	Status        int
	LoyaltyPoints int
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Status:        int(aggregate.Status()),
		LoyaltyPoints: aggregate.LoyaltyPoints(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id, dto.Name, dto.Phone,
		customer.Status(dto.Status),
		dto.LoyaltyPoints,
	)
}
