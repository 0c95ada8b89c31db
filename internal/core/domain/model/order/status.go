package order

import (
	"errors"
	"fmt"

	"ayoya/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Assigned ──> InDelivery ──> Delivered
//	    │            │            │             │
//	    └────────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The Confirmed -> Assigned edge is
// only walked by Order.Assign, never by a bare status change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order, awaiting
	// confirmation by a logistics operator.
	Pending

	// Confirmed indicates the order was reviewed and accepted; it is now
	// eligible for delivery-person assignment.
	Confirmed

	// Assigned indicates a delivery person is bound to the order.
	// Reassignment is allowed while in this status.
	Assigned

	// InDelivery indicates the delivery person is on the way. The
	// assignment is locked from this point on.
	InDelivery

	// Delivered indicates successful completion. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before completion.
	// Terminal; a previously assigned delivery person is retained.
	Cancelled
)

// ErrInvalidTransition is the sentinel for illegal status changes; use
// errors.Is to classify InvalidTransitionError values.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError identifies both ends of a rejected status change so
// callers can surface the exact conflict to the operator.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current and requested statuses.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Assigned:   "assigned",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// allowedTransitions is the full transition table. A status missing from the
// map (or mapped to an empty set) is terminal.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Assigned, Cancelled},
		Assigned:   {InDelivery, Cancelled},
		InDelivery: {Delivered, Cancelled},
	}
}

// StatusFromString parses the wire representation ("pending", "in_delivery",
// ...) into a Status. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from s
// to target. Same-status transitions are never allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status change, returning the new
// status. A no-op transition (target equals current) is rejected as an
// InvalidTransitionError rather than silently ignored, so the caller must
// block same-status submissions explicitly.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// ValidateCourier validates the consistency between order status and
// delivery-person assignment:
//   - Pending and Confirmed orders must not have a delivery person
//   - Assigned, InDelivery and Delivered orders must have one
//   - Cancelled orders may retain one as a historical record
func (s Status) ValidateCourier(hasCourier bool) error {
	requiresCourier := s == Assigned || s == InDelivery || s == Delivered

	if !hasCourier && requiresCourier {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s requires an assigned delivery person", s),
		)
	}

	if hasCourier && !requiresCourier && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s must not have an assigned delivery person", s),
		)
	}

	return nil
}
