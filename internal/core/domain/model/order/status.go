package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine: each state has exactly one
// successor, there is no skipping, no reversal and no cancellation state.
//
// State chain:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//
// Delivered is terminal. Status is a value object that validates transitions
// and provides the wire string representations used by the API and storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every placed order, waiting for the
	// vendor to start preparation.
	Pending

	// Preparing indicates the vendor has accepted the order and is preparing it.
	Preparing

	// OutForDelivery indicates the order has left the vendor for delivery.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions.
	Delivered
)

// ErrIllegalTransition classifies rejected status transitions for errors.Is.
var ErrIllegalTransition = errors.New("illegal order status transition")

// getStatusStrings returns the wire strings for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns only the recognized statuses, keyed for validation
// and for parsing wire input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// StatusFromString parses a wire status name ("Pending", "Preparing",
// "Out for Delivery", "Delivered"). Any other input is invalid.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized order status", s))
}

// Validate checks that the Status is one of the four recognized states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe on any value, returning "Unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the single successor of the status.
// The second result is false for Delivered (terminal) and invalid values.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// IsTerminal reports whether the status has no outgoing transition.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AdvanceTo validates a transition to requested and returns the new status.
// The transition is legal only when requested is exactly the single successor
// of the current status; same-state, skip-ahead and backward requests all fail
// with an IllegalTransitionError naming the one legal next state.
func (s Status) AdvanceTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := s.Next()
	if !ok || next != requested {
		return Unknown, &IllegalTransitionError{Current: s, Requested: requested}
	}

	return requested, nil
}

// IllegalTransitionError reports a rejected status transition. It names the
// current status and the one legal next status so callers can correct their
// request without guessing.
type IllegalTransitionError struct {
	Current   Status
	Requested Status
}

func (e *IllegalTransitionError) Error() string {
	next, ok := e.Current.Next()
	if !ok {
		return fmt.Sprintf("%s: order is %s, which is terminal; %s was requested",
			ErrIllegalTransition, e.Current, e.Requested)
	}
	return fmt.Sprintf("%s: order is %s and can only move to %s; %s was requested",
		ErrIllegalTransition, e.Current, next, e.Requested)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
