// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and status transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, pricing, and lifecycle
//   - Status: a state machine enforcing valid status transitions
//   - Customer: contact details with delivery-phone defaulting
//   - Pricing: unit prices and the total amount computation
//
// Key business rules:
//   - Status follows pending -> confirmed -> assigned -> in_delivery ->
//     delivered, with cancellation reachable from any non-terminal state
//   - The assigned status is only reachable by binding a delivery person
//     through Order.Assign; a bare status change to assigned is rejected
//   - Reassignment is allowed while assigned, locked once delivery starts
//   - Cancellation keeps a previously assigned delivery person for
//     historical traceability
//   - The total amount is fixed at creation from the pricing in effect
package order
