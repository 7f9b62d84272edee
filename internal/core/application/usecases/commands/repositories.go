// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
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

	// TransitionLogRepoFactory provides access to the transition log within a transaction.
	TransitionLogRepoFactory interface {
		TransitionLogRepository() ports.TransitionLogRepository
	}

	// OrderUoW manages transactions spanning the order record and its audit log.
	// Every state change commits the order update and the appended transition
	// record together, so readers never see them disagree.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TransitionLogRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
