// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
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

	// StageRecordRepoFactory provides access to the stage record repository
	// within a transaction.
	StageRecordRepoFactory interface {
		StageRecordRepository() ports.StageRecordRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StageUoW manages transactions for stage-record-only operations.
	StageUoW interface {
		TxManager
		StageRecordRepoFactory
	}

	// StageUoWFactory creates new stage unit of work instances.
	StageUoWFactory interface {
		Create() StageUoW
	}

	// UoW manages transactions that read orders and write stage records.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   record, err := uow.StageRecordRepository().Get(ctx, orderID, stg)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		StageRecordRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
