// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW manages transactions across both order and courier aggregates.
	// Used for commands that read or modify both aggregate types, such as
	// assignment and roster removal.
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// OrderCache invalidates cached order read models after a mutation commits.
// Invalidation is best effort: a failed invalidation leaves a stale entry
// that expires with its TTL, so handlers do not fail the command over it.
type OrderCache interface {
	Invalidate(ctx context.Context, orderID kernel.UUID) error
}
