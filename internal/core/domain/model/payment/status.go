package payment

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──> Processing ──> Approved ──> Refunded
//	   │            │    └───> Rejected
//	   └────────────┴────────> Cancelled
//
// Rejected, Cancelled, and Refunded are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a recorded payment.
	Pending

	// Processing indicates the payment was handed to the settlement flow.
	Processing

	// Approved indicates the payment settled successfully.
	Approved

	// Rejected indicates the settlement flow declined the payment. Terminal.
	Rejected

	// Cancelled indicates the payment was withdrawn before settling. Terminal.
	Cancelled

	// Refunded indicates an approved payment was returned. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Processing:    "Processing",
		Approved:      "Approved",
		Rejected:      "Rejected",
		Cancelled:     "Cancelled",
		Refunded:      "Refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Approved:   "Approved",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
		Refunded:   "Refunded",
	}
}

func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Approved, Rejected, Cancelled},
		Approved:   {Refunded},
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

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s != UnknownStatus
}

// TransitionTo validates the move from the current status to next and
// returns the new status. Disallowed moves fail with an
// InvalidTransitionError.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return UnknownStatus, errs.NewInvalidTransitionError("payment", s.String(), next.String())
}
