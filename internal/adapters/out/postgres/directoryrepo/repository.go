package directoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEntityDirectory implements EntityDirectory using GORM.
type GormEntityDirectory struct {
	db *gorm.DB
}

// NewGormEntityDirectory creates a new GORM entity directory.
func NewGormEntityDirectory(db *gorm.DB) *GormEntityDirectory {
	return &GormEntityDirectory{db: db}
}

// EntitiesByType lists the directory entries of one entity kind, sorted by name.
func (d *GormEntityDirectory) EntitiesByType(
	ctx context.Context,
	entityType kernel.EntityType,
) ([]ports.DirectoryEntry, error) {
	if err := entityType.Validate(); err != nil {
		return nil, err
	}

	var dtos []SupplyEntityDTO
	err := d.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "kind = ?", entityType.String()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ports.DirectoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, entryFromDTO(dto, entityType))
	}

	return entries, nil
}

// ResolveEntity finds an entity by exact name within a kind. Name resolution
// is the authoritative path during reconciliation: stored numeric ids may be
// stale after directory edits, the name is re-resolved on every open.
func (d *GormEntityDirectory) ResolveEntity(
	ctx context.Context,
	entityType kernel.EntityType,
	name string,
) (ports.DirectoryEntry, error) {
	if err := entityType.Validate(); err != nil {
		return ports.DirectoryEntry{}, err
	}
	if name == "" {
		return ports.DirectoryEntry{}, errs.NewValueIsRequiredError("name")
	}

	var dto SupplyEntityDTO
	err := d.db.WithContext(ctx).
		First(&dto, "kind = ? AND name = ?", entityType.String(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DirectoryEntry{}, errs.NewObjectNotFoundError("supply entity", name)
		}
		return ports.DirectoryEntry{}, err
	}

	return entryFromDTO(dto, entityType), nil
}

// Drivers lists the transport pool, sorted by name.
func (d *GormEntityDirectory) Drivers(ctx context.Context) ([]ports.DriverEntry, error) {
	var dtos []DriverDTO
	if err := d.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.DriverEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, ports.DriverEntry{ID: dto.ID, Name: dto.Name})
	}

	return entries, nil
}

// Labours lists the loading workers, sorted by name.
func (d *GormEntityDirectory) Labours(ctx context.Context) ([]ports.LabourEntry, error) {
	var dtos []LabourDTO
	if err := d.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]ports.LabourEntry, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, ports.LabourEntry{ID: dto.ID, Name: dto.Name})
	}

	return entries, nil
}
