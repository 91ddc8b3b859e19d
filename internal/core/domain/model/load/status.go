package load

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with defined transitions so load runs only
// move forward through the dispatch workflow.
//
// State transitions:
//
//	Planned ──> InTransit ──┬──> Delivered ──> Complete
//	                        └──> Complete
//
// The canonical string form is lowercase: "planned", "in_transit",
// "delivered", "complete".
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status of every new load. Planned loads
	// accept package assignments.
	StatusPlanned

	// StatusInTransit indicates the load run has departed.
	StatusInTransit

	// StatusDelivered indicates the run reached its destination but has not
	// been closed out yet.
	StatusDelivered

	// StatusComplete indicates the run is closed out.
	// This is a final state with no further transitions allowed.
	StatusComplete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPlanned:   "planned",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusComplete:  "complete",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlanned:   "planned",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusComplete:  "complete",
	}
}

// StatusFromString parses the canonical lowercase form of a load status.
// Returns an error for unrecognized input, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"load status",
		fmt.Errorf("%q is not a valid load status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"load status",
			fmt.Errorf("%d is not a valid load status", s),
		)
	}
	return nil
}

// String returns the canonical lowercase name of the status.
// It implements fmt.Stringer and is safe to call on any value,
// returning "unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to next. Loads only move forward: planned to in_transit,
// in_transit to delivered or complete, delivered to complete.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPlanned:
		return next == StatusInTransit
	case StatusInTransit:
		return next == StatusDelivered || next == StatusComplete
	case StatusDelivered:
		return next == StatusComplete
	default:
		return false
	}
}

// TransitionTo validates and performs a status transition.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if next is invalid or unreachable from the current status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"load status",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
