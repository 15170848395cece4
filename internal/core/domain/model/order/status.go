package order

import (
	"fmt"

	"algexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │            │             │           │              │
//	   └────────────┴─────────────┴───────────┴──────────────┴──> Cancelled
//
// Pickup and dine-in orders move from Ready straight to Delivered, skipping
// OutForDelivery. Re-entering the current status is rejected, as is any
// backward move. Delivered and Cancelled are terminal.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status. Lines may be added, removed,
	// and re-priced only while the order is Pending.
	Pending

	// Confirmed indicates the order was accepted; the line list is frozen.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is ready for handover or dispatch.
	Ready

	// OutForDelivery indicates a courier is en route (delivery kind only).
	OutForDelivery

	// Delivered indicates the order was fulfilled. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
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
	return s == Delivered || s == Cancelled
}

// successor returns the single forward successor of the status for the given
// order kind. Terminal statuses and UnknownStatus have no successor.
func (s Status) successor(kind Kind) (Status, bool) {
	switch s {
	case Pending:
		return Confirmed, true
	case Confirmed:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		if kind == Delivery {
			return OutForDelivery, true
		}
		return Delivered, true
	case OutForDelivery:
		if kind == Delivery {
			return Delivered, true
		}
		return UnknownStatus, false
	default:
		return UnknownStatus, false
	}
}

// TransitionTo validates the move from the current status to next for the
// given order kind and returns the new status.
//
// Allowed moves:
//   - the single forward successor of the current status
//   - Cancelled from any non-terminal status
//
// Everything else is rejected with an InvalidTransitionError, including
// re-entering the current status and any backward move.
func (s Status) TransitionTo(next Status, kind Kind) (Status, error) {
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}

	if next == Cancelled {
		if s.IsTerminal() {
			return UnknownStatus, errs.NewInvalidTransitionError("order", s.String(), next.String())
		}
		return Cancelled, nil
	}

	successor, ok := s.successor(kind)
	if !ok || successor != next {
		return UnknownStatus, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}

	return next, nil
}
