package order

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Kind represents how an order is fulfilled. Delivery orders carry a delivery
// fee and pass through the OutForDelivery status; pickup and dine-in orders
// skip both.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Delivery orders are brought to the customer by a courier.
	Delivery

	// Pickup orders are collected by the customer.
	Pickup

	// DineIn orders are consumed on premises.
	DineIn
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Delivery:    "Delivery",
		Pickup:      "Pickup",
		DineIn:      "DineIn",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Delivery: "Delivery",
		Pickup:   "Pickup",
		DineIn:   "DineIn",
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses the human-readable kind name used on the wire.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getValidKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a valid order kind", s))
}
