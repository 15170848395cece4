package delivery

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	WaitingForCourier ──> EnRoute <──> DeliveryAttempt
//	        │                │              │
//	        │                ├──> Delivered │
//	        │                ├──> Returned <┘ (also Delivered)
//	        └────────────────┴──> Cancelled
//
// Delivered, Returned, and Cancelled are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// WaitingForCourier is the initial status, before a courier is assigned.
	WaitingForCourier

	// EnRoute indicates the courier departed with the order.
	EnRoute

	// DeliveryAttempt indicates the courier tried a handover that failed.
	DeliveryAttempt

	// Delivered indicates the order was handed over. Terminal.
	Delivered

	// Cancelled indicates the assignment was abandoned. Terminal.
	Cancelled

	// Returned indicates the order came back undelivered. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:     "Unknown",
		WaitingForCourier: "WaitingForCourier",
		EnRoute:           "EnRoute",
		DeliveryAttempt:   "DeliveryAttempt",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
		Returned:          "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForCourier: "WaitingForCourier",
		EnRoute:           "EnRoute",
		DeliveryAttempt:   "DeliveryAttempt",
		Delivered:         "Delivered",
		Cancelled:         "Cancelled",
		Returned:          "Returned",
	}
}

func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		WaitingForCourier: {EnRoute, Cancelled},
		EnRoute:           {DeliveryAttempt, Delivered, Returned, Cancelled},
		DeliveryAttempt:   {EnRoute, Delivered, Returned, Cancelled},
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
	return UnknownStatus, errs.NewInvalidTransitionError("delivery assignment", s.String(), next.String())
}
