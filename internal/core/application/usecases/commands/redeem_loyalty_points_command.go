package commands

import (
	"errors"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/guard"
)

var (
	ErrRedeemLoyaltyPointsCommandIsNotConstructed = errors.New(
		"RedeemLoyaltyPointsCommand must be created via NewRedeemLoyaltyPointsCommand constructor",
	)
	ErrPointsAreInvalid = errors.New("points must be greater than 0")
)

// RedeemLoyaltyPointsCommand represents a request to spend loyalty points as
// a discount on a pending order.
type RedeemLoyaltyPointsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	points  int

	guard guard.ConstructorGuard
}

// NewRedeemLoyaltyPointsCommand creates a command to redeem loyalty points.
func NewRedeemLoyaltyPointsCommand(orderID kernel.UUID, points int) (RedeemLoyaltyPointsCommand, error) {
	cmd := RedeemLoyaltyPointsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPoints(points),
	); err != nil {
		return RedeemLoyaltyPointsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RedeemLoyaltyPointsCommand) Validate() error {
	return c.guard.Validate(ErrRedeemLoyaltyPointsCommandIsNotConstructed)
}

// OrderID returns the discounted order's identifier.
func (c RedeemLoyaltyPointsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Points returns the number of points to redeem.
func (c RedeemLoyaltyPointsCommand) Points() int {
	return c.points
}

func (c *RedeemLoyaltyPointsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RedeemLoyaltyPointsCommand) setPoints(points int) error {
	if points <= 0 {
		return ErrPointsAreInvalid
	}

	c.points = points
	return nil
}
