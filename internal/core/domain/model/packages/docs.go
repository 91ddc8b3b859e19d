// Package packages provides domain entities and business logic for package
// management in the freightdesk system. It implements the Package aggregate
// root with lifecycle management, load assignment, and consolidation.
//
// The package includes:
//   - Package: The aggregate root managing identity, relationships, and lifecycle
//   - ShipmentStatus: A state machine enforcing valid shipment status transitions
//   - IndexEntry and IndexEntriesOf: The derived secondary-index facts for a package
//
// Key business rules:
//   - Packages must have a valid identifier, owning customer, received date,
//     and non-negative weight
//   - New packages start in "ready" status with no load or consolidation links
//   - A package belongs to at most one load at a time
//   - Consolidation is exactly one level deep: parents are never children and
//     children never have children of their own
//   - Every package implies exactly one index entry per customer, received-date,
//     and status index
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package packages
