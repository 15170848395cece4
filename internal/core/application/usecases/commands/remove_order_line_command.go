package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to drop a line from a pending
// order.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to remove a line from an order.
func NewRemoveOrderLineCommand(orderID, lineID kernel.UUID) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to remove.
func (c RemoveOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
