// Package load provides domain entities and business logic for shipment run
// management in the freightdesk system. It implements the Load aggregate root
// with membership tracking, derived totals, and lifecycle management.
//
// The package includes:
//   - Load: The aggregate root owning the ordered member list and delivery schedule
//   - Status: A state machine enforcing the forward-only load workflow
//
// Key business rules:
//   - Membership is ordered by assignment sequence and de-duplicated
//   - TotalPackages and TotalWeight are always recomputable from the current
//     membership and refreshed after every membership change
//   - Loads transition planned -> in_transit -> delivered -> complete only in
//     that order (in_transit may close out directly to complete)
//   - Deleting a load requires detaching every member package first
package load
