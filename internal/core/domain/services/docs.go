// Package services provides domain services that orchestrate business rules
// across multiple aggregates in the freightdesk system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - IndexPlanner: computes the secondary-index delta between two package snapshots
//   - ConsolidationPolicy: validates consolidation preconditions across packages
//
// Both services are pure: they read aggregate state and return results without
// touching storage, which keeps them trivially testable and safe to call from
// any handler.
package services
