package delivery

import (
	"errors"
	"time"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through the NewAssignment factory method.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// ErrCourierNotAssigned is returned when departing an assignment that has no
// courier yet.
var ErrCourierNotAssigned = errors.New("assignment has no courier")

// Assignment tracks the delivery of one order from courier pickup to
// handover. It is created waiting for a courier when a delivery order is
// confirmed and carries the fee echo so the courier settlement does not need
// the order aggregate.
type Assignment struct {
	id      kernel.UUID
	orderID kernel.UUID

	// courierID is nil until a courier picks the assignment up
	courierID *kernel.UUID

	status Status

	// attempts counts failed handovers
	attempts int

	createdAt     time.Time
	departureTime *time.Time
	deliveryTime  *time.Time
	returnTime    *time.Time

	cancellationReason string

	// deliveryFee echoes the fee charged on the order
	deliveryFee kernel.Money

	isConstructed bool
}

// NewAssignment creates an assignment in WaitingForCourier for the given
// order.
func NewAssignment(id, orderID kernel.UUID, deliveryFee kernel.Money) (*Assignment, error) {
	a := &Assignment{
		status:        WaitingForCourier,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the delivered order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// CourierID returns the assigned courier, nil while waiting.
func (a *Assignment) CourierID() *kernel.UUID {
	return a.courierID
}

// Status returns the current status of the assignment.
func (a *Assignment) Status() Status {
	return a.status
}

// Attempts returns the number of failed handovers.
func (a *Assignment) Attempts() int {
	return a.attempts
}

// CreatedAt returns the assignment creation timestamp.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// DepartureTime returns the first departure timestamp, nil before departure.
func (a *Assignment) DepartureTime() *time.Time {
	return a.departureTime
}

// DeliveryTime returns the handover timestamp, nil until Delivered.
func (a *Assignment) DeliveryTime() *time.Time {
	return a.deliveryTime
}

// ReturnTime returns the return timestamp, nil unless Returned.
func (a *Assignment) ReturnTime() *time.Time {
	return a.returnTime
}

// CancellationReason returns the reason given on Cancel, empty otherwise.
func (a *Assignment) CancellationReason() string {
	return a.cancellationReason
}

// DeliveryFee returns the fee echoed from the order.
func (a *Assignment) DeliveryFee() kernel.Money {
	return a.deliveryFee
}

// AssignCourier attaches a courier to a waiting assignment.
func (a *Assignment) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if a.status != WaitingForCourier {
		return errs.NewInvalidTransitionError("delivery assignment", a.status.String(), WaitingForCourier.String())
	}

	a.courierID = &courierID
	return nil
}

// Depart moves the assignment to EnRoute. The first departure stamps the
// departure time; re-departing after a failed attempt keeps the original
// timestamp. Departing without a courier fails.
func (a *Assignment) Depart() error {
	if a.courierID == nil {
		return ErrCourierNotAssigned
	}

	newStatus, err := a.status.TransitionTo(EnRoute)
	if err != nil {
		return err
	}

	if a.departureTime == nil {
		now := time.Now()
		a.departureTime = &now
	}
	a.status = newStatus
	return nil
}

// RecordAttempt registers a failed handover. Allowed while EnRoute or
// already in DeliveryAttempt; each call increments the attempt counter.
func (a *Assignment) RecordAttempt() error {
	if a.status != DeliveryAttempt {
		newStatus, err := a.status.TransitionTo(DeliveryAttempt)
		if err != nil {
			return err
		}
		a.status = newStatus
	}

	a.attempts++
	return nil
}

// MarkDelivered completes the assignment and stamps the delivery time.
func (a *Assignment) MarkDelivered() error {
	newStatus, err := a.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	now := time.Now()
	a.status = newStatus
	a.deliveryTime = &now
	return nil
}

// MarkReturned ends the assignment with the order coming back undelivered
// and stamps the return time.
func (a *Assignment) MarkReturned() error {
	newStatus, err := a.status.TransitionTo(Returned)
	if err != nil {
		return err
	}

	now := time.Now()
	a.status = newStatus
	a.returnTime = &now
	return nil
}

// Cancel abandons the assignment with a reason.
func (a *Assignment) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := a.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.cancellationReason = reason
	return nil
}

// DeliveryMinutes returns the whole minutes between departure and handover.
// The second result is false while either timestamp is missing.
func (a *Assignment) DeliveryMinutes() (int, bool) {
	if a.departureTime == nil || a.deliveryTime == nil {
		return 0, false
	}
	return int(a.deliveryTime.Sub(*a.departureTime).Minutes()), true
}

// TotalMinutes returns the whole minutes between assignment creation and
// handover. The second result is false until the order is delivered.
func (a *Assignment) TotalMinutes() (int, bool) {
	if a.deliveryTime == nil {
		return 0, false
	}
	return int(a.deliveryTime.Sub(a.createdAt).Minutes()), true
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setDeliveryFee(deliveryFee kernel.Money) error {
	if err := deliveryFee.Validate(); err != nil {
		return err
	}
	if deliveryFee.IsNegative() {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	a.deliveryFee = deliveryFee
	return nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(
	id, orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	attempts int,
	createdAt time.Time,
	departureTime, deliveryTime, returnTime *time.Time,
	cancellationReason string,
	deliveryFee kernel.Money,
) (*Assignment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, errs.NewValueIsInvalidError("attempts")
	}

	a, err := NewAssignment(id, orderID, deliveryFee)
	if err != nil {
		return nil, err
	}

	a.courierID = courierID
	a.status = status
	a.attempts = attempts
	a.createdAt = createdAt
	a.departureTime = departureTime
	a.deliveryTime = deliveryTime
	a.returnTime = returnTime
	a.cancellationReason = cancellationReason
	return a, nil
}
