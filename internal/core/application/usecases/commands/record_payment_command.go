package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// RecordPaymentCommand represents a request to record a payment against an
// order. Cash payments carry the tendered amount; card-like payments carry
// the gateway authorization identifiers.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	method    payment.Method
	amount    kernel.Money
	tendered  kernel.Money
	authRef   payment.AuthorizationRef
	note      string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
// tendered applies to change-requiring methods only; pass kernel.Zero()
// otherwise. authRef may be empty and attached later.
func NewRecordPaymentCommand(
	paymentID, orderID kernel.UUID,
	method payment.Method,
	amount, tendered kernel.Money,
	authRef payment.AuthorizationRef,
	note string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		authRef: authRef,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
		cmd.setAmount(amount),
		cmd.setTendered(tendered),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the settled order's identifier.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the settlement method.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// Amount returns the amount this payment covers.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Tendered returns the cash amount handed over, zero for other methods.
func (c RecordPaymentCommand) Tendered() kernel.Money {
	return c.tendered
}

// AuthorizationRef returns the gateway reference, possibly empty.
func (c RecordPaymentCommand) AuthorizationRef() payment.AuthorizationRef {
	return c.authRef
}

// Note returns the free-text note for the payment.
func (c RecordPaymentCommand) Note() string {
	return c.note
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setTendered(tendered kernel.Money) error {
	if err := tendered.Validate(); err != nil {
		return err
	}

	c.tendered = tendered
	return nil
}
