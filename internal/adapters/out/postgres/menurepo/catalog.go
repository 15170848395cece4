package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/pkg/errs"
)

// GormCatalogLookup implements CatalogLookup against the menu tables.
// The ordering core only reads catalog data; writes belong to the catalog
// management system.
type GormCatalogLookup struct {
	db *gorm.DB
}

// NewGormCatalogLookup creates a read-only catalog adapter.
func NewGormCatalogLookup(db *gorm.DB) *GormCatalogLookup {
	return &GormCatalogLookup{db: db}
}

// GetItem retrieves a catalog item with its price table and eligible
// modifiers.
func (c *GormCatalogLookup) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := c.db.WithContext(ctx).
		Preload("Prices").
		Preload("Modifiers").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
