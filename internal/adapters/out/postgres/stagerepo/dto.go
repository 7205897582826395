// Package stagerepo provides data transfer objects and mapping functions for
// stage record persistence. This package implements the repository pattern for
// the stage record aggregate, handling the conversion between domain entities
// and database representations.
package stagerepo

import (
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/stage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StageRecordDTO represents the database structure for persisting stage
// records. The (order_id, stage) pair is unique: saving a stage again
// replaces the stored payload wholesale. Payload sections are stored as
// separate jsonb columns so partial inspection in SQL stays possible.
type StageRecordDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID        string         `gorm:"type:varchar(64);uniqueIndex:idx_stage_records_order_stage"`
	Stage          string         `gorm:"type:varchar(32);uniqueIndex:idx_stage_records_order_stage"`
	CollectionType string         `gorm:"type:varchar(32)"`
	Assignments    []byte         `gorm:"type:jsonb"`
	Routes         []byte         `gorm:"type:jsonb"`
	Summary        []byte         `gorm:"type:jsonb"`
	Issues         pq.StringArray `gorm:"type:text[]"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for stage records.
func (StageRecordDTO) TableName() string {
	return "stage_records"
}

// fromDomain converts a stage record aggregate to its database representation.
// Payload sections are serialized to JSON here so the domain model stays free
// of storage concerns.
func fromDomain(record *stage.Record) (StageRecordDTO, error) {
	payload := record.Payload()

	assignments, err := stage.EncodeAssignments(payload.Assignments)
	if err != nil {
		return StageRecordDTO{}, err
	}

	routes, err := stage.EncodeRoutes(payload.Routes)
	if err != nil {
		return StageRecordDTO{}, err
	}

	summary, err := stage.EncodeSummary(payload.Summary)
	if err != nil {
		return StageRecordDTO{}, err
	}

	return StageRecordDTO{
		ID:             record.ID(),
		OrderID:        record.OrderID(),
		Stage:          record.Stage().String(),
		CollectionType: payload.CollectionType,
		Assignments:    assignments,
		Routes:         routes,
		Summary:        summary,
		Issues:         pq.StringArray(record.Issues()),
		UpdatedAt:      record.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a stage record aggregate. Decoding is
// tolerant twice over: the payload decoders normalize legacy encodings, and a
// section that still fails to parse is dropped with a log line rather than
// making the whole record unreadable.
func toDomain(dto StageRecordDTO) (*stage.Record, error) {
	stg, err := stage.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	assignments, err := stage.DecodeAssignments(dto.Assignments)
	if err != nil {
		logUnreadableSection(dto, "assignments", err)
		assignments = nil
	}

	routes, err := stage.DecodeRoutes(dto.Routes)
	if err != nil {
		logUnreadableSection(dto, "routes", err)
		routes = nil
	}

	summary, err := stage.DecodeSummary(dto.Summary)
	if err != nil {
		logUnreadableSection(dto, "summary", err)
		summary = nil
	}

	payload := stage.Payload{
		CollectionType: dto.CollectionType,
		Assignments:    assignments,
		Routes:         routes,
		Summary:        summary,
	}

	return stage.RestoreRecord(dto.ID, dto.OrderID, stg, payload, dto.Issues, dto.UpdatedAt)
}

func logUnreadableSection(dto StageRecordDTO, section string, err error) {
	slog.Warn("dropping unreadable stage payload section",
		"orderId", dto.OrderID,
		"stage", dto.Stage,
		"section", section,
		"error", err)
}
