// Package menurepo provides the read-side catalog adapter. The ordering core
// resolves items and their price tables through this package at pricing time.
package menurepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	Description        string
	Category           string
	Available          bool
	PreparationMinutes int
	Prices             []SizePriceDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Modifiers          []ModifierDTO  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// SizePriceDTO represents one size tier of an item's price table.
type SizePriceDTO struct {
	ItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Size   int             `gorm:"primaryKey"`
	Price  decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for item price tiers.
func (SizePriceDTO) TableName() string {
	return "menu_item_prices"
}

// ModifierDTO represents a modifier eligible for an item.
type ModifierDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID          uuid.UUID       `gorm:"type:uuid;index"`
	Name            string
	AdditionalPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	Available       bool
	Allergenic      bool
}

// TableName specifies the database table name for item modifiers.
func (ModifierDTO) TableName() string {
	return "menu_item_modifiers"
}

func toDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	prices := make(map[menu.Size]kernel.Money, len(dto.Prices))
	for _, priceDTO := range dto.Prices {
		prices[menu.Size(priceDTO.Size)] = kernel.NewMoney(priceDTO.Price)
	}

	modifiers := make([]menu.Modifier, 0, len(dto.Modifiers))
	for _, modifierDTO := range dto.Modifiers {
		modifier, modErr := modifierToDomain(modifierDTO)
		if modErr != nil {
			return nil, modErr
		}
		modifiers = append(modifiers, modifier)
	}

	item, err := menu.NewItem(id, dto.Name, menu.Category(dto.Category), prices, modifiers, dto.PreparationMinutes)
	if err != nil {
		return nil, err
	}
	if !dto.Available {
		item.MarkUnavailable()
	}
	if dto.Description != "" {
		item.SetDescription(dto.Description)
	}

	return item, nil
}

func modifierToDomain(dto ModifierDTO) (menu.Modifier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Modifier{}, err
	}

	return menu.NewModifier(id, dto.Name, kernel.NewMoney(dto.AdditionalPrice), dto.Available, dto.Allergenic)
}
