package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to exactly one of these,
// which is what handler and adapter code matches on with errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrObjectNotFound       = errors.New("object not found")
	ErrInvalidConsolidation = errors.New("invalid consolidation")
	ErrNotConsolidated      = errors.New("not consolidated")
	ErrAlreadyAssigned      = errors.New("already assigned")
	ErrIndexDrift           = errors.New("index drift")
)

// sanitize flattens multi-line values so a single error renders on one log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but violates a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports a missing Package, Load, or Customer.
// ParamName names the reference that failed to resolve ("package", "load", ...).
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(fmt.Sprintf("%s", e.ID)), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidConsolidationError reports a consolidation precondition violation:
// self-reference, a parent that is itself a child, a child that already has
// children, or a child already consolidated under a different parent.
type InvalidConsolidationError struct {
	ChildID  string
	ParentID string
	Reason   string
	Cause    error
}

func NewInvalidConsolidationError(childID, parentID, reason string) *InvalidConsolidationError {
	return &InvalidConsolidationError{ChildID: childID, ParentID: parentID, Reason: reason}
}

func NewInvalidConsolidationErrorWithCause(childID, parentID, reason string, cause error) *InvalidConsolidationError {
	return &InvalidConsolidationError{ChildID: childID, ParentID: parentID, Reason: reason, Cause: cause}
}

func (e *InvalidConsolidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: child %s under parent %s: %s (cause: %s)",
			ErrInvalidConsolidation, sanitize(e.ChildID), sanitize(e.ParentID), sanitize(e.Reason), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: child %s under parent %s: %s",
		ErrInvalidConsolidation, sanitize(e.ChildID), sanitize(e.ParentID), sanitize(e.Reason))
}

func (e *InvalidConsolidationError) Unwrap() error {
	return ErrInvalidConsolidation
}

// NotConsolidatedError reports a deconsolidate call on a package without a parent.
type NotConsolidatedError struct {
	PackageID string
	Cause     error
}

func NewNotConsolidatedError(packageID string) *NotConsolidatedError {
	return &NotConsolidatedError{PackageID: packageID}
}

func NewNotConsolidatedErrorWithCause(packageID string, cause error) *NotConsolidatedError {
	return &NotConsolidatedError{PackageID: packageID, Cause: cause}
}

func (e *NotConsolidatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: package %s has no parent (cause: %s)",
			ErrNotConsolidated, sanitize(e.PackageID), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: package %s has no parent", ErrNotConsolidated, sanitize(e.PackageID))
}

func (e *NotConsolidatedError) Unwrap() error {
	return ErrNotConsolidated
}

// AlreadyAssignedError reports an assign-only-if-unassigned request against a
// package that already carries a load reference.
type AlreadyAssignedError struct {
	PackageID string
	LoadID    string
	Cause     error
}

func NewAlreadyAssignedError(packageID, loadID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{PackageID: packageID, LoadID: loadID}
}

func NewAlreadyAssignedErrorWithCause(packageID, loadID string, cause error) *AlreadyAssignedError {
	return &AlreadyAssignedError{PackageID: packageID, LoadID: loadID, Cause: cause}
}

func (e *AlreadyAssignedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: package %s is on load %s (cause: %s)",
			ErrAlreadyAssigned, sanitize(e.PackageID), sanitize(e.LoadID), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: package %s is on load %s", ErrAlreadyAssigned, sanitize(e.PackageID), sanitize(e.LoadID))
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// IndexDriftError reports how far a package's secondary-index entries had
// drifted from its primary record when reconciliation ran. Stale counts
// entries that pointed at outdated attribute values; Missing counts entries
// that should have existed but did not.
type IndexDriftError struct {
	PackageID string
	Stale     int
	Missing   int
}

func NewIndexDriftError(packageID string, stale, missing int) *IndexDriftError {
	return &IndexDriftError{PackageID: packageID, Stale: stale, Missing: missing}
}

func (e *IndexDriftError) Error() string {
	return fmt.Sprintf("%s: package %s: %d stale, %d missing",
		ErrIndexDrift, sanitize(e.PackageID), e.Stale, e.Missing)
}

func (e *IndexDriftError) Unwrap() error {
	return ErrIndexDrift
}
