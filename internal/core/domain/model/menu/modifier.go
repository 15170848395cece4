package menu

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
	"algexpress/internal/pkg/guard"
)

// ErrModifierIsNotConstructed is returned when a Modifier instance was not
// created through the NewModifier factory method.
var ErrModifierIsNotConstructed = errors.New("Modifier must be created via NewModifier constructor")

// Modifier is an add-on or removal instruction that can be applied to a
// catalog item. Adding a modifier to an order line costs its additional
// price; removing one is a preparation instruction and never changes price.
type Modifier struct {
	id              kernel.UUID
	name            string
	additionalPrice kernel.Money
	available       bool
	allergenic      bool

	guard guard.ConstructorGuard
}

// NewModifier creates a validated Modifier read model.
// The additional price may be zero (e.g. a swap with no surcharge) but must
// be a constructed Money and must not be negative.
func NewModifier(
	id kernel.UUID,
	name string,
	additionalPrice kernel.Money,
	available bool,
	allergenic bool,
) (Modifier, error) {
	if err := id.Validate(); err != nil {
		return Modifier{}, err
	}
	if name == "" {
		return Modifier{}, errs.NewValueIsRequiredError("name")
	}
	if err := additionalPrice.Validate(); err != nil {
		return Modifier{}, err
	}
	if additionalPrice.IsNegative() {
		return Modifier{}, errs.NewValueIsInvalidError("additionalPrice")
	}

	return Modifier{
		id:              id,
		name:            name,
		additionalPrice: additionalPrice,
		available:       available,
		allergenic:      allergenic,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the modifier was created through NewModifier.
func (m Modifier) Validate() error {
	return m.guard.Validate(ErrModifierIsNotConstructed)
}

// ID returns the modifier's unique identifier.
func (m Modifier) ID() kernel.UUID {
	return m.id
}

// Name returns the modifier's display name.
func (m Modifier) Name() string {
	return m.name
}

// AdditionalPrice returns the surcharge for adding this modifier to a line.
func (m Modifier) AdditionalPrice() kernel.Money {
	return m.additionalPrice
}

// IsAvailable reports whether the modifier can currently be added to a line.
// Unavailable modifiers can still be removed from an item.
func (m Modifier) IsAvailable() bool {
	return m.available
}

// IsAllergenic reports whether the modifier is flagged as an allergen.
func (m Modifier) IsAllergenic() bool {
	return m.allergenic
}
