package payment

import (
	"errors"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records one settlement attempt against an order.
//
// A payment is created Pending with the amount it covers. Before processing,
// cash payments record the tendered amount and card-like payments attach the
// gateway authorization reference. Process moves the payment through
// Processing to Approved, computing change for cash. Approved payments can be
// refunded; payments that have not settled can be cancelled.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID
	method  Method
	status  Status

	// amountDue is the portion of the order total this payment covers
	amountDue kernel.Money

	// tendered is the cash amount handed over, zero for other methods
	tendered kernel.Money

	// change = max(0, tendered - amountDue), computed on approval
	change kernel.Money

	authRef    AuthorizationRef
	recordedAt time.Time
	paidAt     *time.Time
	note       string

	isConstructed bool
}

// NewPayment records a Pending payment of amountDue against an order.
func NewPayment(id, orderID kernel.UUID, method Method, amountDue kernel.Money, note string) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		note:          note,
		tendered:      kernel.Zero(),
		change:        kernel.Zero(),
		recordedAt:    time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setMethod(method),
		p.setAmountDue(amountDue),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Method returns the settlement method.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current status of the payment.
func (p *Payment) Status() Status {
	return p.status
}

// AmountDue returns the portion of the order total this payment covers.
func (p *Payment) AmountDue() kernel.Money {
	return p.amountDue
}

// Tendered returns the cash amount handed over, zero for other methods.
func (p *Payment) Tendered() kernel.Money {
	return p.tendered
}

// Change returns the change owed back, computed on approval.
func (p *Payment) Change() kernel.Money {
	return p.change
}

// AuthorizationRef returns the attached gateway reference, empty until
// Authorize is called.
func (p *Payment) AuthorizationRef() AuthorizationRef {
	return p.authRef
}

// RecordedAt returns the timestamp the payment was recorded.
func (p *Payment) RecordedAt() time.Time {
	return p.recordedAt
}

// PaidAt returns the approval timestamp, nil until Approved.
func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

// Note returns the payment's free-text note.
func (p *Payment) Note() string {
	return p.note
}

// RecordTendered stores the cash amount handed over. Only change-requiring
// methods accept a tendered amount, and only while the payment is Pending.
// Undertendering is allowed here; the shortfall is simply covered by another
// payment on the same order.
func (p *Payment) RecordTendered(tendered kernel.Money) error {
	if !p.method.RequiresChange() {
		return errs.NewValueIsInvalidError("tendered is only accepted for change-requiring methods")
	}
	if p.status != Pending {
		return errs.NewInvalidTransitionError("payment", p.status.String(), Pending.String())
	}
	if err := tendered.Validate(); err != nil {
		return err
	}
	if tendered.IsNegative() {
		return errs.NewValueIsInvalidError("tendered")
	}

	p.tendered = tendered
	return nil
}

// Authorize attaches the gateway reference to a Pending payment.
// An empty reference is rejected; a partial one is tolerated until Process.
func (p *Payment) Authorize(ref AuthorizationRef) error {
	if p.status != Pending {
		return errs.NewInvalidTransitionError("payment", p.status.String(), Pending.String())
	}
	if ref.IsEmpty() {
		return errs.NewValueIsRequiredError("authorizationRef")
	}

	p.authRef = ref
	return nil
}

// CanBeProcessed reports whether Process would accept the payment.
func (p *Payment) CanBeProcessed() bool {
	ok, _ := p.processable()
	return ok
}

func (p *Payment) processable() (bool, string) {
	if !p.amountDue.IsPositive() {
		return false, "amount due must be positive"
	}
	if p.method.RequiresAuthorization() && p.authRef.IsEmpty() {
		return false, "authorization reference is required"
	}
	if p.status != Pending {
		return false, "payment is not pending"
	}
	return true, ""
}

// Process settles the payment: it moves Pending -> Processing -> Approved,
// computes the change for change-requiring methods, and stamps paidAt.
// A payment that fails the processability check is rejected with a
// PaymentNotProcessableError and left untouched.
func (p *Payment) Process() error {
	if ok, reason := p.processable(); !ok {
		return errs.NewPaymentNotProcessableError(reason)
	}

	processing, err := p.status.TransitionTo(Processing)
	if err != nil {
		return err
	}
	approved, err := processing.TransitionTo(Approved)
	if err != nil {
		return err
	}

	if p.method.RequiresChange() {
		change := p.tendered.Subtract(p.amountDue)
		if change.IsNegative() {
			change = kernel.Zero()
		}
		p.change = change
	}

	now := time.Now()
	p.status = approved
	p.paidAt = &now
	return nil
}

// Decline marks a payment the settlement flow turned down.
// It moves Pending or Processing to Rejected.
func (p *Payment) Decline() error {
	current := p.status
	if current == Pending {
		processing, err := current.TransitionTo(Processing)
		if err != nil {
			return err
		}
		current = processing
	}

	rejected, err := current.TransitionTo(Rejected)
	if err != nil {
		return err
	}

	p.status = rejected
	return nil
}

// Refund returns an approved payment.
func (p *Payment) Refund() error {
	refunded, err := p.status.TransitionTo(Refunded)
	if err != nil {
		return err
	}

	p.status = refunded
	return nil
}

// Cancel withdraws a payment that has not settled yet.
func (p *Payment) Cancel() error {
	cancelled, err := p.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	p.status = cancelled
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setAmountDue(amountDue kernel.Money) error {
	if err := amountDue.Validate(); err != nil {
		return err
	}
	if !amountDue.IsPositive() {
		return errs.NewValueIsInvalidError("amountDue")
	}
	p.amountDue = amountDue
	return nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	method Method,
	status Status,
	amountDue, tendered, change kernel.Money,
	authRef AuthorizationRef,
	recordedAt time.Time,
	paidAt *time.Time,
	note string,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPayment(id, orderID, method, amountDue, note)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(tendered.Validate(), change.Validate()); err != nil {
		return nil, err
	}

	p.status = status
	p.tendered = tendered
	p.change = change
	p.authRef = authRef
	p.recordedAt = recordedAt
	p.paidAt = paidAt
	return p, nil
}
