package menu

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Category groups catalog items for presentation purposes.
// The core treats it as opaque data supplied by the catalog collaborator.
type Category string

const (
	CategoryTraditional Category = "Traditional"
	CategorySpecial     Category = "Special"
	CategoryPremium     Category = "Premium"
	CategorySweet       Category = "Sweet"
	CategoryVegan       Category = "Vegan"
)

// Item is a catalog item read model: a priced product with named size tiers
// and a set of eligible modifiers.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must offer at least one size tier with a valid price
//   - Eligible modifiers are keyed by their identifiers
//
// The ordering core never mutates items; the catalog collaborator owns them.
type Item struct {
	id                 kernel.UUID
	name               string
	description        string
	category           Category
	prices             map[Size]kernel.Money
	modifiers          map[kernel.UUID]Modifier
	available          bool
	preparationMinutes int

	isConstructed bool
}

// NewItem creates a validated catalog item read model.
// prices must contain at least one valid size tier; modifiers lists the
// add-ons eligible for this item.
func NewItem(
	id kernel.UUID,
	name string,
	category Category,
	prices map[Size]kernel.Money,
	modifiers []Modifier,
	preparationMinutes int,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if len(prices) == 0 {
		return nil, errs.NewValueIsRequiredError("prices")
	}
	if preparationMinutes < 0 {
		return nil, errs.NewValueIsInvalidError("preparationMinutes")
	}

	priceTable := make(map[Size]kernel.Money, len(prices))
	for size, price := range prices {
		if err := size.Validate(); err != nil {
			return nil, err
		}
		if err := price.Validate(); err != nil {
			return nil, err
		}
		if price.IsNegative() {
			return nil, errs.NewValueIsInvalidError("price")
		}
		priceTable[size] = price
	}

	modifierTable := make(map[kernel.UUID]Modifier, len(modifiers))
	for _, modifier := range modifiers {
		if err := modifier.Validate(); err != nil {
			return nil, err
		}
		modifierTable[modifier.ID()] = modifier
	}

	return &Item{
		id:                 id,
		name:               name,
		category:           category,
		prices:             priceTable,
		modifiers:          modifierTable,
		available:          true,
		preparationMinutes: preparationMinutes,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's free-text description.
func (i *Item) Description() string {
	return i.description
}

// SetDescription attaches a free-text description to the read model.
func (i *Item) SetDescription(description string) {
	i.description = description
}

// Category returns the item's presentation category.
func (i *Item) Category() Category {
	return i.category
}

// PreparationMinutes returns the estimated kitchen time for one unit.
func (i *Item) PreparationMinutes() int {
	return i.preparationMinutes
}

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.available
}

// MarkUnavailable flags the item as not orderable.
func (i *Item) MarkUnavailable() {
	i.available = false
}

// PriceBySize returns the item's price for the given size tier.
// The second return value is false when the item has no price for that size;
// callers must treat that as a failure, never as a zero price.
func (i *Item) PriceBySize(size Size) (kernel.Money, bool) {
	price, ok := i.prices[size]
	return price, ok
}

// Modifier returns the eligible modifier with the given id, if any.
func (i *Item) Modifier(id kernel.UUID) (Modifier, bool) {
	modifier, ok := i.modifiers[id]
	return modifier, ok
}

// Modifiers returns the item's eligible modifiers keyed by id.
func (i *Item) Modifiers() map[kernel.UUID]Modifier {
	out := make(map[kernel.UUID]Modifier, len(i.modifiers))
	for id, modifier := range i.modifiers {
		out[id] = modifier
	}
	return out
}
