package load

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLoadIsNotConstructed is returned when a Load instance was not created
// through NewLoad or RestoreLoad. This ensures all loads are properly validated.
var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

// Load represents a scheduled shipment run. It is an aggregate root that owns
// the ordered membership list of assigned package ids and the per-city
// delivery schedule.
//
// Load maintains these invariants:
//   - Must have a valid unique identifier
//   - Membership is ordered by assignment sequence and de-duplicated
//   - TotalPackages and TotalWeight are derived from the current membership;
//     they are refreshed after every membership change and never set directly
//   - Status only moves forward: planned, in_transit, delivered, complete
//
// The package side of the assignment relationship (Package.loadID) lives on
// the Package aggregate; the assignment handlers keep both sides in agreement.
type Load struct {
	// id is the unique identifier for the load
	id kernel.UUID

	// status is the current state in the load lifecycle
	status Status

	// membership holds assigned package ids in assignment order, de-duplicated
	membership []kernel.UUID

	// totalPackages and totalWeight are derived from the current membership;
	// they are cached for read paths, never authoritative
	totalPackages int
	totalWeight   decimal.Decimal

	// deliverySchedule maps destination city to its delivery date
	deliverySchedule map[string]kernel.Date

	// defaultDeliveryDate is the fallback when a city has no schedule entry
	// (zero when the load carries no default)
	defaultDeliveryDate kernel.Date

	// guard ensures the load was created via a constructor
	guard guard.ConstructorGuard
}

// NewLoad creates a new Load with validation. The load starts planned with an
// empty membership list and zero totals.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//
// Example:
//
//	ld, err := load.NewLoad(kernel.NewUUID())
//	if err != nil {
//	    // Handle validation error
//	}
func NewLoad(id kernel.UUID) (*Load, error) {
	ld := &Load{
		status:           StatusPlanned,
		totalWeight:      decimal.Zero,
		deliverySchedule: make(map[string]kernel.Date),
		guard:            guard.NewConstructorGuard(),
	}

	if err := ld.setID(id); err != nil {
		return nil, err
	}

	return ld, nil
}

// RestoreLoad reconstructs a Load aggregate from persistent storage.
// Unlike NewLoad, this constructor rebuilds the complete persisted state,
// including membership, cached totals, and the delivery schedule.
//
// membership is de-duplicated preserving first occurrence, so records written
// by racing writers rehydrate into a valid aggregate.
func RestoreLoad(
	id kernel.UUID,
	status Status,
	membership []kernel.UUID,
	totalPackages int,
	totalWeight decimal.Decimal,
	deliverySchedule map[string]kernel.Date,
	defaultDeliveryDate kernel.Date,
) (*Load, error) {
	ld := &Load{
		totalPackages:       totalPackages,
		totalWeight:         totalWeight,
		deliverySchedule:    make(map[string]kernel.Date, len(deliverySchedule)),
		defaultDeliveryDate: defaultDeliveryDate,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ld.setID(id),
		ld.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, packageID := range membership {
		if err := ld.AddMember(packageID); err != nil {
			return nil, err
		}
	}

	for city, date := range deliverySchedule {
		ld.deliverySchedule[city] = date
	}

	return ld, nil
}

// Validate ensures the Load instance was properly constructed.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// Status returns the current load status.
func (l *Load) Status() Status {
	return l.status
}

// Membership returns a copy of the assigned package ids in assignment order.
func (l *Load) Membership() []kernel.UUID {
	out := make([]kernel.UUID, len(l.membership))
	copy(out, l.membership)
	return out
}

// TotalPackages returns the cached member count.
// The value is derived; RefreshTotals recomputes it from the membership.
func (l *Load) TotalPackages() int {
	return l.totalPackages
}

// TotalWeight returns the cached total member weight.
// The value is derived; RefreshTotals recomputes it.
func (l *Load) TotalWeight() decimal.Decimal {
	return l.totalWeight
}

// HasMember reports whether packageID is in the membership list.
func (l *Load) HasMember(packageID kernel.UUID) bool {
	for _, id := range l.membership {
		if id.IsEqual(packageID) {
			return true
		}
	}
	return false
}

// MemberCountOf returns how many times packageID appears in the membership
// list. Anything other than 0 or 1 indicates drift a scrub pass must repair.
func (l *Load) MemberCountOf(packageID kernel.UUID) int {
	count := 0
	for _, id := range l.membership {
		if id.IsEqual(packageID) {
			count++
		}
	}
	return count
}

// AddMember appends packageID to the membership list if absent.
// The operation is idempotent: adding an existing member is a no-op, keeping
// the list de-duplicated even under repeated assignment calls.
func (l *Load) AddMember(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	if l.HasMember(packageID) {
		return nil
	}

	l.membership = append(l.membership, packageID)
	return nil
}

// RemoveMember removes every occurrence of packageID from the membership list.
// Safe to call for an id that is not a member.
func (l *Load) RemoveMember(packageID kernel.UUID) {
	kept := l.membership[:0]
	for _, id := range l.membership {
		if !id.IsEqual(packageID) {
			kept = append(kept, id)
		}
	}
	l.membership = kept
}

// ReplaceMembership swaps the whole membership list, de-duplicating while
// preserving first occurrence. Used by the scrub pass after it filtered out
// phantom members.
func (l *Load) ReplaceMembership(membership []kernel.UUID) error {
	l.membership = nil
	for _, packageID := range membership {
		if err := l.AddMember(packageID); err != nil {
			return err
		}
	}
	return nil
}

// RefreshTotals recomputes the cached totals from the current membership.
// memberWeights carries the weight of each resolvable member; the count always
// comes from the membership list itself.
//
// Must be called after every membership change so the cached totals never
// become a second source of truth.
func (l *Load) RefreshTotals(memberWeights []decimal.Decimal) {
	l.totalPackages = len(l.membership)

	total := decimal.Zero
	for _, w := range memberWeights {
		total = total.Add(w)
	}
	l.totalWeight = total
}

// ChangeStatus transitions the load to the given status, enforcing the
// forward-only state machine.
func (l *Load) ChangeStatus(next Status) error {
	newStatus, err := l.status.TransitionTo(next)
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// DeliverySchedule returns a copy of the city-to-date delivery schedule.
func (l *Load) DeliverySchedule() map[string]kernel.Date {
	out := make(map[string]kernel.Date, len(l.deliverySchedule))
	for city, date := range l.deliverySchedule {
		out[city] = date
	}
	return out
}

// DefaultDeliveryDate returns the fallback delivery date, or nil if the load
// carries none.
func (l *Load) DefaultDeliveryDate() *kernel.Date {
	if l.defaultDeliveryDate.IsZero() {
		return nil
	}
	v := l.defaultDeliveryDate
	return &v
}

// SetDeliveryDate records the delivery date for a destination city.
func (l *Load) SetDeliveryDate(city string, date kernel.Date) error {
	if city == "" {
		return errors.New("city is required")
	}
	if err := date.Validate(); err != nil {
		return err
	}
	l.deliverySchedule[city] = date
	return nil
}

// SetDefaultDeliveryDate records the fallback delivery date.
func (l *Load) SetDefaultDeliveryDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	l.defaultDeliveryDate = date
	return nil
}

// DeliveryDateFor resolves the expected delivery date for a destination city:
// the city's schedule entry when present, otherwise the load's default, or nil
// when the load has neither.
func (l *Load) DeliveryDateFor(city string) *kernel.Date {
	if date, ok := l.deliverySchedule[city]; ok {
		v := date
		return &v
	}
	return l.DefaultDeliveryDate()
}

// Clone returns a deep copy of the load.
func (l *Load) Clone() *Load {
	clone := *l

	clone.membership = make([]kernel.UUID, len(l.membership))
	copy(clone.membership, l.membership)

	clone.deliverySchedule = make(map[string]kernel.Date, len(l.deliverySchedule))
	for city, date := range l.deliverySchedule {
		clone.deliverySchedule[city] = date
	}

	return &clone
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
