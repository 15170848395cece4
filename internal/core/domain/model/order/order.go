package order

import (
	"errors"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when confirming an order with an empty line list.
	ErrOrderHasNoLines = errors.New("order must have at least one line to be confirmed")

	// errLinesFrozen is the cause attached to line mutations attempted outside Pending.
	errLinesFrozen = errors.New("lines are frozen")
)

// Order represents a retail order. It is the aggregate root that owns the
// line items, the derived monetary totals, and the fulfillment status machine.
//
// Order follows these invariants:
//   - total = subtotal - discount + deliveryFee after every mutation
//   - subtotal is always the sum of line totals
//   - Lines can be added, removed, or re-priced only while Pending
//   - A delivery fee is carried only by delivery-kind orders
//   - Status transitions follow the Status state machine for the order's kind
//   - Can only be created through the NewOrder constructor
//
// Totals are derived: consumers must never set them independently. Payments
// are not referenced from the aggregate; the payment ledger looks orders up
// by id and the fully-paid determination lives in the ledger service.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// kind determines the fulfillment flow (delivery, pickup, dine-in)
	kind Kind

	// lines is the order-preserving list of priced entries
	lines []*Line

	// subtotal is the sum of line totals (derived)
	subtotal kernel.Money

	// deliveryFee applies to delivery-kind orders only
	deliveryFee kernel.Money

	// discount is subtracted from the subtotal (loyalty redemptions etc.)
	discount kernel.Money

	// total = subtotal - discount + deliveryFee (derived)
	total kernel.Money

	// status is the current state in the fulfillment lifecycle
	status Status

	// note is a free-text instruction for the whole order
	note string

	orderedAt   time.Time
	confirmedAt *time.Time
	completedAt *time.Time

	// requiresRefund is set when the order is cancelled with approved payments
	requiresRefund bool

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no lines.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer
//   - kind: fulfillment kind; delivery orders must carry a non-negative fee,
//     other kinds must carry a zero fee
//   - deliveryFee: the fee supplied by the delivery-zone collaborator
//   - note: free-text instruction, may be empty
func NewOrder(id, customerID kernel.UUID, kind Kind, deliveryFee kernel.Money, note string) (*Order, error) {
	o := &Order{
		status:        Pending,
		note:          note,
		orderedAt:     time.Now(),
		discount:      kernel.Zero(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setKind(kind),
		o.setDeliveryFee(kind, deliveryFee),
	); err != nil {
		return nil, err
	}

	o.recalculateTotals()
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// Call when reconstructing orders from persistence to gate malformed rows.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Kind returns the fulfillment kind.
func (o *Order) Kind() Kind {
	return o.kind
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Note returns the order's free-text instruction.
func (o *Order) Note() string {
	return o.note
}

// Lines returns a copy of the order's line list, preserving order.
func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

// Line returns the line with the given id, if present.
func (o *Order) Line(lineID kernel.UUID) (*Line, bool) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, true
		}
	}
	return nil, false
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the fee charged for delivery-kind orders (zero otherwise).
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Total returns the derived order total: subtotal - discount + deliveryFee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// OrderedAt returns the creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// ConfirmedAt returns the confirmation timestamp, nil while unconfirmed.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// CompletedAt returns the completion timestamp, nil until Delivered.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// RequiresRefund reports whether the order was cancelled while holding
// approved payments. Refund orchestration is an external collaborator's job;
// this flag is how the core signals it.
func (o *Order) RequiresRefund() bool {
	return o.requiresRefund
}

// AddLine appends a priced line to a Pending order and recomputes the totals.
//
// Returns an InvalidTransitionError when the order has left Pending, or a
// validation error for a malformed or duplicate line.
func (o *Order) AddLine(line *Line) error {
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}
	if _, exists := o.Line(line.ID()); exists {
		return errs.NewValueIsInvalidError("line id already present")
	}

	o.lines = append(o.lines, line)
	o.recalculateTotals()
	return nil
}

// RemoveLine deletes the line with the given id from a Pending order and
// recomputes the totals. Returns ObjectNotFoundError when the line is absent.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}

	for i, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			o.recalculateTotals()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("lineId", lineID.String())
}

// RepriceLine replaces the unit price of a line on a Pending order and
// recomputes the line total and the order totals.
func (o *Order) RepriceLine(lineID kernel.UUID, unitPrice kernel.Money) error {
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}

	line, ok := o.Line(lineID)
	if !ok {
		return errs.NewObjectNotFoundError("lineId", lineID.String())
	}
	if err := line.reprice(unitPrice); err != nil {
		return err
	}

	o.recalculateTotals()
	return nil
}

// ApplyLoyaltyDiscount sets the order discount (e.g. a loyalty redemption) on a
// Pending order and recomputes the totals. The discount must be a constructed,
// non-negative Money.
func (o *Order) ApplyLoyaltyDiscount(discount kernel.Money) error {
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}
	if err := discount.Validate(); err != nil {
		return err
	}
	if discount.IsNegative() {
		return errs.NewValueIsInvalidError("discount")
	}

	o.discount = discount
	o.recalculateTotals()
	return nil
}

// Confirm moves the order from Pending to Confirmed, freezing the line list
// and stamping the confirmation time. An order without lines cannot be
// confirmed.
func (o *Order) Confirm() error {
	if len(o.lines) == 0 {
		return ErrOrderHasNoLines
	}

	newStatus, err := o.status.TransitionTo(Confirmed, o.kind)
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.confirmedAt = &now
	o.recalculateTotals()
	return nil
}

// StartPreparing moves the order from Confirmed to Preparing.
func (o *Order) StartPreparing() error {
	return o.transition(Preparing)
}

// MarkReady moves the order from Preparing to Ready.
func (o *Order) MarkReady() error {
	return o.transition(Ready)
}

// Dispatch moves a delivery order from Ready to OutForDelivery.
// Pickup and dine-in orders skip this status and reject the move.
func (o *Order) Dispatch() error {
	return o.transition(OutForDelivery)
}

// MarkDelivered moves the order to Delivered and stamps the completion time.
// Delivery orders arrive here from OutForDelivery, other kinds from Ready.
func (o *Order) MarkDelivered() error {
	if err := o.transition(Delivered); err != nil {
		return err
	}

	now := time.Now()
	o.completedAt = &now
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal status.
// hasApprovedPayments flags the order for refund orchestration when the
// payment ledger already holds approved payments for it.
func (o *Order) Cancel(hasApprovedPayments bool) error {
	if err := o.transition(Cancelled); err != nil {
		return err
	}

	o.requiresRefund = hasApprovedPayments
	return nil
}

func (o *Order) transition(next Status) error {
	newStatus, err := o.status.TransitionTo(next, o.kind)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ensureLinesMutable rejects composition changes once the order left Pending.
func (o *Order) ensureLinesMutable() error {
	if o.status != Pending {
		return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), Pending.String(), errLinesFrozen)
	}
	return nil
}

// recalculateTotals reestablishes the monetary invariant after a mutation:
// subtotal = sum of line totals; total = subtotal - discount + deliveryFee.
func (o *Order) recalculateTotals() {
	subtotal := kernel.Zero()
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Total())
	}

	o.subtotal = subtotal
	o.total = subtotal.Subtract(o.discount).Add(o.deliveryFee)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setDeliveryFee(kind Kind, deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}
	if deliveryFee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	if kind != Delivery && deliveryFee.IsPositive() {
		return errs.NewValueIsInvalidError("deliveryFee is only allowed for delivery orders")
	}
	o.deliveryFee = deliveryFee
	return nil
}

// RestoreOrder reconstructs an Order from persistence.
// Totals are recomputed from the stored lines rather than trusted, keeping
// them derived values even across the persistence boundary.
func RestoreOrder(
	id, customerID kernel.UUID,
	kind Kind,
	lines []*Line,
	deliveryFee, discount kernel.Money,
	status Status,
	note string,
	orderedAt time.Time,
	confirmedAt, completedAt *time.Time,
	requiresRefund bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, kind, deliveryFee, note)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if lineErr := line.Validate(); lineErr != nil {
			return nil, lineErr
		}
	}

	if err = discount.Validate(); err != nil {
		return nil, err
	}

	o.lines = append([]*Line(nil), lines...)
	o.discount = discount
	o.status = status
	o.orderedAt = orderedAt
	o.confirmedAt = confirmedAt
	o.completedAt = completedAt
	o.requiresRefund = requiresRefund
	o.recalculateTotals()
	return o, nil
}
