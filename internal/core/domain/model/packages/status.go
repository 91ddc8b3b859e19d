package packages

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// ShipmentStatus represents the lifecycle state of a package shipment.
// It implements a state machine with defined transitions to ensure packages
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Ready ──> InTransit ──> Delivered ──> Returned
//	  │           │
//	  └───────────┴──> Exception ──> Ready | InTransit | Returned
//
// The canonical string form (used for index keys, persistence, and the HTTP
// API) is lowercase snake case: "ready", "in_transit", "delivered",
// "exception", "returned".
type ShipmentStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ShipmentStatus values.
	StatusUnknown ShipmentStatus = iota

	// StatusReady is the initial status of every new package. Ready packages
	// are waiting to be assigned to a load.
	StatusReady

	// StatusInTransit indicates the package is moving on an active load.
	StatusInTransit

	// StatusDelivered indicates the package reached its destination.
	StatusDelivered

	// StatusException indicates a handling problem that needs intervention
	// before the package can continue through the workflow.
	StatusException

	// StatusReturned indicates the package was sent back to the origin.
	// This is a final state with no further transitions allowed.
	StatusReturned
)

// getStatusStrings returns the canonical string form of every status,
// including StatusUnknown, to support string conversion.
func getStatusStrings() map[ShipmentStatus]string {
	return map[ShipmentStatus]string{
		StatusUnknown:   "unknown",
		StatusReady:     "ready",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusException: "exception",
		StatusReturned:  "returned",
	}
}

// getValidStatusStrings returns only valid statuses to support validation
// and parsing.
func getValidStatusStrings() map[ShipmentStatus]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[ShipmentStatus]string{
		StatusReady:     "ready",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusException: "exception",
		StatusReturned:  "returned",
	}
}

// ShipmentStatusFromString parses the canonical lowercase form of a status.
// Returns an error for unrecognized input, including "unknown".
func ShipmentStatusFromString(s string) (ShipmentStatus, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the ShipmentStatus value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s ShipmentStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the canonical lowercase name of the status.
// It implements fmt.Stringer and is safe to call on any value,
// returning "unknown" for invalid ones.
func (s ShipmentStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// getAllowedTransitions returns the set of statuses reachable from each status.
// StatusReturned is terminal; StatusException can resume the normal workflow.
func getAllowedTransitions() map[ShipmentStatus][]ShipmentStatus {
	return map[ShipmentStatus][]ShipmentStatus{
		StatusReady:     {StatusInTransit, StatusException},
		StatusInTransit: {StatusDelivered, StatusException, StatusReturned},
		StatusDelivered: {StatusReturned},
		StatusException: {StatusReady, StatusInTransit, StatusReturned},
		StatusReturned:  {},
	}
}

// CanTransitionTo reports whether the status machine allows moving from the
// current status to next.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if next is invalid or unreachable from the current status
//
// This method is used by Package.ChangeStatus to enforce the workflow.
func (s ShipmentStatus) TransitionTo(next ShipmentStatus) (ShipmentStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
