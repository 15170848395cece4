package customer

import (
	"errors"

	"github.com/shopspring/decimal"

	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

var (
	pointsPerUnit  = decimal.NewFromInt(10)
	pointUnitValue = decimal.RequireFromString("0.10")
)

// PointsEarned returns the loyalty points granted for a completed order total:
// one point per full 10 currency units, fractions discarded.
func PointsEarned(total kernel.Money) int {
	return int(total.Amount().Div(pointsPerUnit).IntPart())
}

// RedemptionDiscount returns the monetary value of the given points at
// 0.10 currency units per point.
func RedemptionDiscount(points int) kernel.Money {
	return kernel.NewMoney(decimal.NewFromInt(int64(points)).Mul(pointUnitValue))
}

// Customer is the aggregate holding a customer's identity and loyalty balance.
// The balance is an integer point count and never goes negative.
type Customer struct {
	id     kernel.UUID
	name   string
	phone  string
	status Status

	// loyaltyPoints is the redeemable balance, always >= 0
	loyaltyPoints int

	isConstructed bool
}

// NewCustomer creates an Active customer with an empty loyalty balance.
func NewCustomer(id kernel.UUID, name, phone string) (*Customer, error) {
	c := &Customer{
		status:        Active,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Status returns the account standing.
func (c *Customer) Status() Status {
	return c.status
}

// LoyaltyPoints returns the current redeemable balance.
func (c *Customer) LoyaltyPoints() int {
	return c.loyaltyPoints
}

// Accrue adds earned points to the balance. Non-positive amounts are a no-op;
// completing a cheap order may legitimately earn zero points.
func (c *Customer) Accrue(points int) {
	if points <= 0 {
		return
	}
	c.loyaltyPoints += points
}

// Redeem removes points from the balance.
// Returns an InsufficientPointsError when points exceed the balance and a
// validation error for a non-positive amount.
func (c *Customer) Redeem(points int) error {
	if points <= 0 {
		return errs.NewValueIsInvalidError("points")
	}
	if points > c.loyaltyPoints {
		return errs.NewInsufficientPointsError(c.loyaltyPoints, points)
	}

	c.loyaltyPoints -= points
	return nil
}

// Deactivate pauses the account at the customer's request.
func (c *Customer) Deactivate() {
	c.status = Inactive
}

// Activate restores a paused or blocked account.
func (c *Customer) Activate() {
	c.status = Active
}

// Block suspends the account.
func (c *Customer) Block() {
	c.status = Blocked
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone string, status Status, loyaltyPoints int) (*Customer, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if loyaltyPoints < 0 {
		return nil, errs.NewValueIsInvalidError("loyaltyPoints")
	}

	c, err := NewCustomer(id, name, phone)
	if err != nil {
		return nil, err
	}

	c.status = status
	c.loyaltyPoints = loyaltyPoints
	return c, nil
}
