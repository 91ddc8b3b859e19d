// Package errs provides standardized error types for the freightdesk core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors.
//
// Validation errors raised before any write happens:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced Package/Load/Customer does not exist
//
// Entity-graph errors raised by the assignment and consolidation rules:
//   - InvalidConsolidationError: self-reference, nesting-depth, or cycle violation
//   - NotConsolidatedError: deconsolidating a package that has no parent
//   - AlreadyAssignedError: assign-only-if-unassigned was requested for a
//     package that already carries a load
//   - IndexDriftError: secondary-index entries disagreed with the primary
//     record (reported by reconciliation, never fatal)
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel, so that
//     errors.Is(err, errs.ErrObjectNotFound) works across layers
package errs
