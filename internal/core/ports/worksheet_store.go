package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/model/worksheet"
)

// WorksheetStore holds the in-memory editing state between commands. A
// worksheet exists from OpenStage until it is swept or replaced; losing one
// is harmless because the next open rebuilds it from the persisted payload.
type WorksheetStore interface {
	// Get retrieves the worksheet of an (order, stage) pair.
	// Returns errs.ErrObjectNotFound when no worksheet is open.
	Get(ctx context.Context, orderID string, stg stage.Stage) (*worksheet.Worksheet, error)

	// Put stores a worksheet, replacing any previous one for the pair.
	Put(ctx context.Context, ws *worksheet.Worksheet) error

	// Remove drops the worksheet of an (order, stage) pair, if present.
	Remove(ctx context.Context, orderID string, stg stage.Stage) error

	// SweepIdle removes worksheets not touched since the given time and
	// returns how many were dropped.
	SweepIdle(ctx context.Context, idleSince time.Time) (int, error)
}
