// Package directoryrepo provides read access to the supply directory:
// farmers, suppliers, third parties, drivers and labours. The directory is
// reference data maintained by an upstream system; this package only reads it.
package directoryrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// SupplyEntityDTO represents one source entity row. All three entity kinds
// share the supply_entities table, discriminated by the kind column.
type SupplyEntityDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Kind    string `gorm:"type:varchar(32);index"`
	Name    string `gorm:"type:varchar(255);index"`
	Address string `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for supply entities.
func (SupplyEntityDTO) TableName() string {
	return "supply_entities"
}

// DriverDTO represents one driver of the transport pool.
type DriverDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// LabourDTO represents one loading worker.
type LabourDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for labours.
func (LabourDTO) TableName() string {
	return "labours"
}

func entryFromDTO(dto SupplyEntityDTO, entityType kernel.EntityType) ports.DirectoryEntry {
	return ports.DirectoryEntry{
		ID:         dto.ID,
		Name:       dto.Name,
		Address:    dto.Address,
		EntityType: entityType,
	}
}
