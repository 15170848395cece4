package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrNextStatusIsNotAdvanceable = errors.New(
		"next status must be Preparing, Ready, or OutForDelivery",
	)
)

// AdvanceOrderCommand represents a request to move an order one step along
// its fulfillment flow. Confirmation, completion, and cancellation have their
// own commands; this one covers the kitchen and dispatch steps.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order to next.
// next must be Preparing, Ready, or OutForDelivery.
func NewAdvanceOrderCommand(orderID kernel.UUID, next order.Status) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested status.
func (c AdvanceOrderCommand) Next() order.Status {
	return c.next
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setNext(next order.Status) error {
	switch next {
	case order.Preparing, order.Ready, order.OutForDelivery:
	default:
		return ErrNextStatusIsNotAdvanceable
	}

	c.next = next
	return nil
}
