package customer

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Status represents the standing of a customer account.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Active customers can place orders and use the loyalty program.
	Active

	// Inactive customers paused their account themselves.
	Inactive

	// Blocked customers were suspended by the business.
	Blocked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Active:        "Active",
		Inactive:      "Inactive",
		Blocked:       "Blocked",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Active",
		Inactive: "Inactive",
		Blocked:  "Blocked",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the human-readable status name used on the wire.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", str),
	)
}
