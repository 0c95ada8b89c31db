// Package kernel provides core domain primitives used throughout the domain
// model. It follows Domain-Driven Design conventions: every primitive is an
// immutable value object whose invariants are enforced at construction.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Address: a delivery destination (street, city, optional Cotonou zone)
//
// These primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
