package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/stage"
)

// StageRecordRepository is the persistence contract for stage records. A
// record is addressed by its (order, stage) pair and saves replace the whole
// payload.
type StageRecordRepository interface {
	// Add persists a new stage record.
	Add(ctx context.Context, record *stage.Record) error

	// Update replaces the payload of an existing stage record.
	Update(ctx context.Context, record *stage.Record) error

	// Get retrieves the record of an (order, stage) pair.
	// Returns errs.ErrObjectNotFound when no save exists yet.
	Get(ctx context.Context, orderID string, stg stage.Stage) (*stage.Record, error)

	// GetAllForOrder retrieves every saved stage record of an order.
	GetAllForOrder(ctx context.Context, orderID string) ([]*stage.Record, error)
}
