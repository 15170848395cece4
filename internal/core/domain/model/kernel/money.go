package kernel

import (
	"algexpress/internal/pkg/errs"
	"algexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromString, NewMoneyFromFloat, or Zero",
)

// moneyScale is the fixed number of fractional digits every Money carries.
const moneyScale = 2

// Money is an immutable exact decimal monetary amount with a fixed 2-digit
// scale. Every constructor and every multiplication rounds half-up to two
// digits, so addition and subtraction of Money values never need re-rounding.
//
// Money follows these invariants:
//   - No operation produces a value with more than 2 fractional digits
//   - Every operation returns a new Money; receivers are never mutated
//   - Equality and ordering compare the normalized amounts
//   - Can only be created through the constructor functions
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("32.90")
//	extra, _ := kernel.NewMoneyFromString("4.50")
//	lineTotal := price.Add(extra).Multiply(2) // 74.80
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount, rounding half-up to two
// fractional digits.
func NewMoney(amount decimal.Decimal) Money {
	return Money{
		amount: amount.Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoneyFromFloat creates a Money from a float amount.
// Intended for literals in tests and fixtures; production code should prefer
// NewMoneyFromString to avoid binary float artifacts.
func NewMoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString parses a decimal string like "12.50" into a Money.
// Returns a validation error for malformed input.
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d), nil
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return NewMoney(decimal.Zero)
}

// Validate checks that the Money was created through a constructor.
// Returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying normalized decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
// Operands are already normalized to two digits, so the result is not re-rounded.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Subtract returns the difference of two Money values.
func (m Money) Subtract(other Money) Money {
	return Money{
		amount: m.amount.Sub(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Multiply returns the amount multiplied by an integer factor,
// rounded half-up to two fractional digits.
func (m Money) Multiply(factor int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))))
}

// MultiplyDecimal returns the amount multiplied by a decimal factor,
// rounded half-up to two fractional digits.
func (m Money) MultiplyDecimal(factor decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(factor))
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// GreaterOrEqual reports whether m is greater than or equal to other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String returns the amount formatted with two fractional digits, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
