package commands

import (
	"errors"
	"time"

	"algexpress/internal/pkg/guard"
)

var (
	ErrExpirePaymentsCommandIsNotConstructed = errors.New(
		"ExpirePaymentsCommand must be created via NewExpirePaymentsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("maxAge must be greater than 0")
)

// ExpirePaymentsCommand triggers the cancellation of payments that stayed
// Pending for too long, for example an abandoned checkout.
type ExpirePaymentsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePaymentsCommand creates a command to cancel pending payments older
// than maxAge.
func NewExpirePaymentsCommand(maxAge time.Duration) (ExpirePaymentsCommand, error) {
	cmd := ExpirePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return ExpirePaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePaymentsCommandIsNotConstructed)
}

// MaxAge returns how long a payment may stay Pending before expiring.
func (c ExpirePaymentsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpirePaymentsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
