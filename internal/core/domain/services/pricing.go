package services

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
)

var (
	// ErrUnknownSize is returned when the item carries no price for the
	// requested size tier.
	ErrUnknownSize = errors.New("item has no price for the requested size")

	// ErrUnavailableModifier is returned when an added modifier does not
	// exist on the item or is currently unavailable.
	ErrUnavailableModifier = errors.New("modifier does not exist or is unavailable")

	// ErrUnavailableItem is returned when pricing an item that is off the menu.
	ErrUnavailableItem = errors.New("item is unavailable")

	// ErrInvalidQuantity is returned for a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// PricingEngine computes order line prices from the catalog.
//
// The unit price of a line is the item's price for the chosen size plus the
// additional price of every added modifier. Removed modifiers never change
// the price: leaving an ingredient out is free.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceLine computes the unit price and line total for a customized item.
//
// Parameters:
//   - item: the catalog item being ordered
//   - size: the chosen size tier
//   - addedIDs / removedIDs: the customer's modifier choices
//   - quantity: number of units, at least 1
//
// Returns the unit price and the line total (unit price times quantity).
func (e PricingEngine) PriceLine(
	item *menu.Item,
	size menu.Size,
	addedIDs, removedIDs []kernel.UUID,
	quantity int,
) (kernel.Money, kernel.Money, error) {
	if quantity < 1 {
		return kernel.Money{}, kernel.Money{}, ErrInvalidQuantity
	}
	if err := e.ValidateCustomization(item, addedIDs, removedIDs); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	basePrice, ok := item.PriceBySize(size)
	if !ok {
		return kernel.Money{}, kernel.Money{}, ErrUnknownSize
	}

	unitPrice := basePrice
	for _, id := range addedIDs {
		modifier, _ := item.Modifier(id)
		unitPrice = unitPrice.Add(modifier.AdditionalPrice())
	}

	return unitPrice, unitPrice.Multiply(quantity), nil
}

// ValidateCustomization checks a modifier selection against the catalog item.
//
// The item must be available. Added modifiers must exist on the item and be
// available. Removed modifiers must exist but may be unavailable: not serving
// an ingredient is no reason to reject leaving it out.
func (e PricingEngine) ValidateCustomization(item *menu.Item, addedIDs, removedIDs []kernel.UUID) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsAvailable() {
		return ErrUnavailableItem
	}

	for _, id := range addedIDs {
		modifier, ok := item.Modifier(id)
		if !ok || !modifier.IsAvailable() {
			return ErrUnavailableModifier
		}
	}
	for _, id := range removedIDs {
		if _, ok := item.Modifier(id); !ok {
			return ErrUnavailableModifier
		}
	}
	return nil
}
