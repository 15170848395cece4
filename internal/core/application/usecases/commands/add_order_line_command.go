package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to add a priced line to a pending
// order.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	line    LineInput

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
func NewAddOrderLineCommand(orderID kernel.UUID, line LineInput) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLine(line),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Line returns the requested line, unpriced.
func (c AddOrderLineCommand) Line() LineInput {
	return c.line
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLine(line LineInput) error {
	if err := line.validate(); err != nil {
		return err
	}

	c.line = line
	return nil
}
