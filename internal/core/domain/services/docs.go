// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - AssignmentService: binds a delivery person to an order, enforcing the
//     rules that span both aggregates
//
// Domain services hold the logic that belongs to no single aggregate root,
// following Domain-Driven Design principles.
package services
