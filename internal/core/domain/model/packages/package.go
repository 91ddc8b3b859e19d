package packages

import (
	"errors"
	"fmt"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage. This ensures all packages are
// properly validated.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

// Package represents a shippable unit in the system. It is the aggregate root
// and the unit of mutation: assignment, consolidation, and status changes all
// go through Package methods.
//
// Package maintains these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Must have a valid received date and non-negative weight
//   - Status transitions follow the ShipmentStatus state machine
//   - A package has at most one current load (loadID)
//   - Consolidation is exactly one level deep: a package with a parent never
//     has children of its own, and vice versa
//   - childIDs is an ordered, de-duplicated set
//
// The load membership side of the assignment relationship and the parent side
// of the consolidation relationship live on the Load and parent Package
// aggregates; the command handlers keep both sides in agreement.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Package struct {
	// id is the unique identifier for the package
	id kernel.UUID

	// customerID is the owning customer (required, never cleared)
	customerID kernel.UUID

	// receivedDate is the date the item entered the system
	receivedDate kernel.Date

	// status is the current state in the shipment lifecycle
	status ShipmentStatus

	// loadID is the current load assignment (nil if unassigned)
	loadID *kernel.UUID

	// parentID is the consolidating parent package (nil if not consolidated)
	parentID *kernel.UUID

	// childIDs are consolidated child packages, ordered by consolidation
	// sequence (only non-empty when this package is a consolidation parent)
	childIDs []kernel.UUID

	// weight is the package weight; it feeds Load.TotalWeight
	weight decimal.Decimal

	// destinationCity keys the load's per-city delivery schedule
	destinationCity string

	// labelStatus and paymentStatus are opaque passthrough fields owned by
	// the label and payment collaborators; the core stores them unmodified
	labelStatus   string
	paymentStatus string

	// guard ensures the package was created via a constructor
	guard guard.ConstructorGuard
}

// NewPackage creates a new Package with validation. This is the only way
// (besides RestorePackage) to create a valid Package.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - customerID: Owning customer (must be a valid UUID)
//   - receivedDate: Date the item entered the system (must be constructed)
//   - weight: Package weight (must not be negative)
//   - destinationCity: Destination city for delivery-date lookup (may be empty)
//
// The package is created with status Ready, no load assignment, and no
// consolidation links.
//
// Example:
//
//	pkg, err := packages.NewPackage(
//	    kernel.NewUUID(), customerID, kernel.Today(),
//	    decimal.NewFromFloat(2.5), "Rotterdam",
//	)
//	if err != nil {
//	    // Handle validation error
//	}
func NewPackage(
	id kernel.UUID,
	customerID kernel.UUID,
	receivedDate kernel.Date,
	weight decimal.Decimal,
	destinationCity string,
) (*Package, error) {
	pkg := &Package{
		status:          StatusReady,
		destinationCity: destinationCity,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setCustomerID(customerID),
		pkg.setReceivedDate(receivedDate),
		pkg.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// RestorePackage reconstructs a Package aggregate from persistent storage.
// Unlike NewPackage, which creates fresh packages in Ready status with no
// relationships, this constructor rebuilds the complete persisted state,
// including load assignment and consolidation links.
//
// childIDs is de-duplicated preserving first occurrence, so records written by
// racing writers rehydrate into a valid aggregate.
//
// Returns an error if any persisted value fails validation, which indicates
// corrupted storage rather than a caller mistake.
func RestorePackage(
	id kernel.UUID,
	customerID kernel.UUID,
	receivedDate kernel.Date,
	status ShipmentStatus,
	loadID *kernel.UUID,
	parentID *kernel.UUID,
	childIDs []kernel.UUID,
	weight decimal.Decimal,
	destinationCity string,
	labelStatus string,
	paymentStatus string,
) (*Package, error) {
	pkg := &Package{
		destinationCity: destinationCity,
		labelStatus:     labelStatus,
		paymentStatus:   paymentStatus,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setCustomerID(customerID),
		pkg.setReceivedDate(receivedDate),
		pkg.setStatus(status),
		pkg.setWeight(weight),
	); err != nil {
		return nil, err
	}

	if loadID != nil {
		if err := loadID.Validate(); err != nil {
			return nil, err
		}
		v := *loadID
		pkg.loadID = &v
	}

	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return nil, err
		}
		v := *parentID
		pkg.parentID = &v
	}

	for _, childID := range childIDs {
		if err := pkg.AddChild(childID); err != nil {
			return nil, err
		}
	}

	return pkg, nil
}

// Validate ensures the Package instance was properly constructed.
// It should be called when reconstructing packages from persistence to
// prevent bypassing validation by directly instantiating the struct.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the owning customer's identifier.
func (p *Package) CustomerID() kernel.UUID {
	return p.customerID
}

// ReceivedDate returns the date the package entered the system.
func (p *Package) ReceivedDate() kernel.Date {
	return p.receivedDate
}

// Status returns the current shipment status.
func (p *Package) Status() ShipmentStatus {
	return p.status
}

// LoadID returns the current load assignment, or nil if unassigned.
func (p *Package) LoadID() *kernel.UUID {
	if p.loadID == nil {
		return nil
	}
	v := *p.loadID
	return &v
}

// ParentID returns the consolidating parent's identifier, or nil if the
// package is not consolidated under another package.
func (p *Package) ParentID() *kernel.UUID {
	if p.parentID == nil {
		return nil
	}
	v := *p.parentID
	return &v
}

// ChildIDs returns a copy of the consolidated child identifiers in
// consolidation order. Empty unless this package is a consolidation parent.
func (p *Package) ChildIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.childIDs))
	copy(out, p.childIDs)
	return out
}

// Weight returns the package weight.
func (p *Package) Weight() decimal.Decimal {
	return p.weight
}

// DestinationCity returns the destination city, or "" if not set.
func (p *Package) DestinationCity() string {
	return p.destinationCity
}

// LabelStatus returns the opaque label collaborator status.
func (p *Package) LabelStatus() string {
	return p.labelStatus
}

// PaymentStatus returns the opaque payment collaborator status.
func (p *Package) PaymentStatus() string {
	return p.paymentStatus
}

// IsAssigned reports whether the package currently references a load.
func (p *Package) IsAssigned() bool {
	return p.loadID != nil
}

// IsConsolidated reports whether the package is a child in a consolidation.
func (p *Package) IsConsolidated() bool {
	return p.parentID != nil
}

// HasChildren reports whether the package is a consolidation parent.
func (p *Package) HasChildren() bool {
	return len(p.childIDs) > 0
}

// HasChild reports whether id is among the package's consolidated children.
func (p *Package) HasChild(id kernel.UUID) bool {
	for _, childID := range p.childIDs {
		if childID.IsEqual(id) {
			return true
		}
	}
	return false
}

// AssignToLoad records the package's current load. Reassignment from a
// different load is allowed; detaching from the prior load's membership is the
// assignment handler's responsibility, since that list lives on the Load
// aggregate.
func (p *Package) AssignToLoad(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	v := loadID
	p.loadID = &v
	return nil
}

// Unassign clears the package's load reference.
// Safe to call on an unassigned package.
func (p *Package) Unassign() {
	p.loadID = nil
}

// SetParent records the package's consolidating parent.
//
// Business rules enforced here:
//   - A package cannot be its own parent
//   - A package with children of its own cannot become a child (consolidation
//     is exactly one level deep)
//
// Cross-aggregate rules (the parent must not itself be a child, and the parent
// must exist) are the consolidation policy's responsibility.
func (p *Package) SetParent(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}

	if parentID.IsEqual(p.id) {
		return errs.NewInvalidConsolidationError(p.id.String(), parentID.String(),
			"package cannot be consolidated under itself")
	}

	if p.HasChildren() {
		return errs.NewInvalidConsolidationError(p.id.String(), parentID.String(),
			"package with children cannot become a child")
	}

	v := parentID
	p.parentID = &v
	return nil
}

// ClearParent removes the package's parent reference.
// Safe to call on a package that has no parent.
func (p *Package) ClearParent() {
	p.parentID = nil
}

// AddChild appends id to the package's consolidated children if absent.
// The operation is idempotent: adding an existing child is a no-op.
//
// Business rules enforced here:
//   - A package cannot be its own child
//   - A package that is itself a child cannot gain children (consolidation is
//     exactly one level deep)
func (p *Package) AddChild(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if id.IsEqual(p.id) {
		return errs.NewInvalidConsolidationError(id.String(), p.id.String(),
			"package cannot be consolidated under itself")
	}

	if p.IsConsolidated() {
		return errs.NewInvalidConsolidationError(id.String(), p.id.String(),
			"package that is itself a child cannot gain children")
	}

	if p.HasChild(id) {
		return nil
	}

	p.childIDs = append(p.childIDs, id)
	return nil
}

// RemoveChild removes id from the package's consolidated children.
// Safe to call for an id that is not a child.
func (p *Package) RemoveChild(id kernel.UUID) {
	for i, childID := range p.childIDs {
		if childID.IsEqual(id) {
			p.childIDs = append(p.childIDs[:i], p.childIDs[i+1:]...)
			return
		}
	}
}

// ChangeStatus transitions the package to the given shipment status,
// enforcing the ShipmentStatus state machine.
//
// Returns an error if next is invalid or unreachable from the current status.
func (p *Package) ChangeStatus(next ShipmentStatus) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// SetLabelStatus stores the label collaborator's status without interpreting it.
func (p *Package) SetLabelStatus(status string) {
	p.labelStatus = status
}

// SetPaymentStatus stores the payment collaborator's status without interpreting it.
func (p *Package) SetPaymentStatus(status string) {
	p.paymentStatus = status
}

// Clone returns a deep copy of the package. Handlers snapshot a package before
// mutating it so the index planner can diff the before and after states.
func (p *Package) Clone() *Package {
	clone := *p

	if p.loadID != nil {
		v := *p.loadID
		clone.loadID = &v
	}
	if p.parentID != nil {
		v := *p.parentID
		clone.parentID = &v
	}
	clone.childIDs = make([]kernel.UUID, len(p.childIDs))
	copy(clone.childIDs, p.childIDs)

	return &clone
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	p.customerID = customerID
	return nil
}

func (p *Package) setReceivedDate(receivedDate kernel.Date) error {
	if err := receivedDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receivedDate", err)
	}
	p.receivedDate = receivedDate
	return nil
}

func (p *Package) setStatus(status ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Package) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is negative", weight.String()))
	}
	p.weight = weight
	return nil
}
