package ports

import (
	"context"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
)

// CatalogLookup is the read-side contract to the menu catalog. The ordering
// core never owns catalog data; it resolves items at pricing time through
// this port.
type CatalogLookup interface {
	// GetItem retrieves a catalog item with its price table and eligible
	// modifiers.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)
}
