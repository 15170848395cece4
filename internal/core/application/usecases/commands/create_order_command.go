package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required for delivery orders")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// LineInput describes one requested order line before pricing. The item,
// size, and modifier choices are resolved against the catalog and priced by
// the pricing engine when the command is handled.
type LineInput struct {
	ItemID             kernel.UUID
	Size               menu.Size
	Quantity           int
	AddedModifierIDs   []kernel.UUID
	RemovedModifierIDs []kernel.UUID
	Note               string
}

func (l LineInput) validate() error {
	if err := l.ItemID.Validate(); err != nil {
		return err
	}
	if err := l.Size.Validate(); err != nil {
		return err
	}
	if l.Quantity < 1 {
		return ErrQuantityIsInvalid
	}
	return nil
}

// CreateOrderCommand represents a request to open a new order for a customer.
// Delivery orders carry the destination address used to calculate the fee.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, order.Delivery,
//	    "Rua Augusta 1500", "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	kind       order.Kind
	address    string
	note       string
	lines      []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// The line list may be empty; lines can be added while the order is pending.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	kind order.Kind,
	address string,
	note string,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setKind(kind),
		cmd.setAddress(kind, address),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Kind returns the fulfillment kind.
func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

// Address returns the delivery destination, empty for pickup and dine-in.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Note returns the free-text instruction for the order.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// Lines returns the requested lines, unpriced.
func (c CreateOrderCommand) Lines() []LineInput {
	return append([]LineInput(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setAddress(kind order.Kind, address string) error {
	if kind == order.Delivery && address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return err
		}
	}

	c.lines = append([]LineInput(nil), lines...)
	return nil
}
