package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// DirectoryEntry is one source entity of the supply directory.
type DirectoryEntry struct {
	ID         int64
	Name       string
	Address    string
	EntityType kernel.EntityType
}

// DriverEntry is one driver of the transport pool.
type DriverEntry struct {
	ID   int64
	Name string
}

// LabourEntry is one loading worker.
type LabourEntry struct {
	ID   int64
	Name string
}

// EntityDirectory is the read-side contract for the supply directory:
// farmers, suppliers, third parties, drivers and labours. The directory is
// reference data maintained elsewhere; the engine resolves names against it.
type EntityDirectory interface {
	// EntitiesByType lists the directory entries of one entity kind.
	EntitiesByType(ctx context.Context, entityType kernel.EntityType) ([]DirectoryEntry, error)

	// ResolveEntity finds an entity by exact name within a kind.
	// Returns errs.ErrObjectNotFound when the name is not in the directory.
	ResolveEntity(ctx context.Context, entityType kernel.EntityType, name string) (DirectoryEntry, error)

	// Drivers lists the transport pool.
	Drivers(ctx context.Context) ([]DriverEntry, error)

	// Labours lists the loading workers.
	Labours(ctx context.Context) ([]LabourEntry, error)
}
