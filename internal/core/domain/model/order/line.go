package order

import (
	"errors"
	"fmt"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one priced entry in an order: a catalog item at a chosen size with
// added and removed modifiers and a quantity. The unit price is supplied by
// the pricing engine; the line total is always unit price times quantity.
//
// Lines are owned by their Order and reference the catalog item by id only.
// They are recomputed whenever their composition changes and become immutable
// once the order leaves Pending.
type Line struct {
	id                 kernel.UUID
	itemID             kernel.UUID
	itemName           string
	size               menu.Size
	quantity           int
	addedModifierIDs   []kernel.UUID
	removedModifierIDs []kernel.UUID
	note               string
	unitPrice          kernel.Money
	total              kernel.Money

	isConstructed bool
}

// NewLine creates a priced order line.
//
// Parameters:
//   - id: unique identifier of the line
//   - itemID: catalog item reference
//   - itemName: item display name snapshotted for receipts
//   - size: the chosen size tier
//   - quantity: number of units (must be >= 1)
//   - addedModifierIDs / removedModifierIDs: modifier references
//   - note: free-text preparation note
//   - unitPrice: the price of one unit as computed by the pricing engine
func NewLine(
	id kernel.UUID,
	itemID kernel.UUID,
	itemName string,
	size menu.Size,
	quantity int,
	addedModifierIDs []kernel.UUID,
	removedModifierIDs []kernel.UUID,
	note string,
	unitPrice kernel.Money,
) (*Line, error) {
	line := &Line{
		itemName:      itemName,
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setItemID(itemID),
		line.setSize(size),
		line.setQuantity(quantity),
		line.setModifierIDs(addedModifierIDs, removedModifierIDs),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	line.recalculateTotal()
	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the referenced catalog item id.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// ItemName returns the item display name snapshotted when the line was priced.
func (l *Line) ItemName() string {
	return l.itemName
}

// Size returns the chosen size tier.
func (l *Line) Size() menu.Size {
	return l.size
}

// Quantity returns the number of units.
func (l *Line) Quantity() int {
	return l.quantity
}

// AddedModifierIDs returns the ids of the added modifiers.
func (l *Line) AddedModifierIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), l.addedModifierIDs...)
}

// RemovedModifierIDs returns the ids of the removed modifiers.
func (l *Line) RemovedModifierIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), l.removedModifierIDs...)
}

// Note returns the free-text preparation note.
func (l *Line) Note() string {
	return l.note
}

// UnitPrice returns the price of one unit.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns the line total: unit price times quantity.
func (l *Line) Total() kernel.Money {
	return l.total
}

// reprice replaces the unit price and recomputes the line total.
// Called by the owning Order while it is still Pending.
func (l *Line) reprice(unitPrice kernel.Money) error {
	if err := l.setUnitPrice(unitPrice); err != nil {
		return err
	}
	l.recalculateTotal()
	return nil
}

// recalculateTotal reestablishes total = unitPrice * quantity.
func (l *Line) recalculateTotal() {
	l.total = l.unitPrice.Multiply(l.quantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setSize(size menu.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	l.size = size
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than or equal to 1", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setModifierIDs(added, removed []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(added)+len(removed))
	for _, id := range added {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidError("addedModifierIds contain duplicates")
		}
		seen[id] = struct{}{}
	}
	for _, id := range removed {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidError("removedModifierIds overlap addedModifierIds")
		}
		seen[id] = struct{}{}
	}

	l.addedModifierIDs = append([]kernel.UUID(nil), added...)
	l.removedModifierIDs = append([]kernel.UUID(nil), removed...)
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	l.unitPrice = unitPrice
	return nil
}

// RestoreLine reconstructs a Line from persistence without re-pricing it.
// Totals are trusted as stored; Validate gates malformed rows.
func RestoreLine(
	id kernel.UUID,
	itemID kernel.UUID,
	itemName string,
	size menu.Size,
	quantity int,
	addedModifierIDs []kernel.UUID,
	removedModifierIDs []kernel.UUID,
	note string,
	unitPrice kernel.Money,
	total kernel.Money,
) (*Line, error) {
	line, err := NewLine(id, itemID, itemName, size, quantity, addedModifierIDs, removedModifierIDs, note, unitPrice)
	if err != nil {
		return nil, err
	}
	if err := total.Validate(); err != nil {
		return nil, err
	}
	line.total = total
	return line, nil
}
