package payment

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Method identifies how a payment is settled. Each method carries a fixed
// capability pair: whether it needs change computed (cash) and whether it
// needs an authorization reference before processing (card-like methods).
type Method int

const (
	// UnknownMethod represents an invalid or undefined method.
	// This value (0) helps catch uninitialized Method values.
	UnknownMethod Method = iota

	// Cash is settled at handover; the tendered amount may exceed the due
	// amount and the difference is returned as change.
	Cash

	// CreditCard is settled through a card acquirer.
	CreditCard

	// DebitCard is settled through a card acquirer.
	DebitCard

	// InstantTransfer is settled through the instant bank transfer rails.
	InstantTransfer

	// MealVoucher is settled through a meal benefit program.
	MealVoucher

	// FoodVoucher is settled through a food benefit program.
	FoodVoucher
)

type methodCapabilities struct {
	requiresChange        bool
	requiresAuthorization bool
}

func getMethodCapabilities() map[Method]methodCapabilities {
	return map[Method]methodCapabilities{
		Cash:            {requiresChange: true, requiresAuthorization: false},
		CreditCard:      {requiresChange: false, requiresAuthorization: true},
		DebitCard:       {requiresChange: false, requiresAuthorization: true},
		InstantTransfer: {requiresChange: false, requiresAuthorization: true},
		MealVoucher:     {requiresChange: false, requiresAuthorization: false},
		FoodVoucher:     {requiresChange: false, requiresAuthorization: false},
	}
}

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod:   "Unknown",
		Cash:            "Cash",
		CreditCard:      "CreditCard",
		DebitCard:       "DebitCard",
		InstantTransfer: "InstantTransfer",
		MealVoucher:     "MealVoucher",
		FoodVoucher:     "FoodVoucher",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded as it's invalid
	return map[Method]string{
		Cash:            "Cash",
		CreditCard:      "CreditCard",
		DebitCard:       "DebitCard",
		InstantTransfer: "InstantTransfer",
		MealVoucher:     "MealVoucher",
		FoodVoucher:     "FoodVoucher",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// MethodFromString parses the human-readable method name used on the wire.
func MethodFromString(str string) (Method, error) {
	for method, name := range getValidMethodStrings() {
		if name == str {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		"method is invalid",
		fmt.Errorf("%q is not a valid method", str),
	)
}

// RequiresChange reports whether the method settles with a tendered amount
// that may exceed the due amount.
func (m Method) RequiresChange() bool {
	return getMethodCapabilities()[m].requiresChange
}

// RequiresAuthorization reports whether the method needs an authorization
// reference before it can be processed.
func (m Method) RequiresAuthorization() bool {
	return getMethodCapabilities()[m].requiresAuthorization
}
