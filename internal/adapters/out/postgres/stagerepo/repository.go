package stagerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStageRecordRepository implements StageRecordRepository using GORM.
type GormStageRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormStageRecordRepository creates a new GORM stage record repository.
func NewGormStageRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormStageRecordRepository {
	return &GormStageRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves the first record of an (order, stage) pair.
func (r *GormStageRecordRepository) Add(ctx context.Context, aggregate *stage.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored payload of an existing record.
func (r *GormStageRecordRepository) Update(ctx context.Context, aggregate *stage.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StageRecordDTO{}).
		Where("id = ?", dto.ID).
		Select("CollectionType", "Assignments", "Routes", "Summary", "Issues", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the record of an (order, stage) pair.
func (r *GormStageRecordRepository) Get(
	ctx context.Context,
	orderID string,
	stg stage.Stage,
) (*stage.Record, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := stg.Validate(); err != nil {
		return nil, err
	}

	var dto StageRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND stage = ?", orderID, stg.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stage record", orderID+"/"+stg.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every saved stage record of an order.
func (r *GormStageRecordRepository) GetAllForOrder(
	ctx context.Context,
	orderID string,
) ([]*stage.Record, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dtos []StageRecordDTO
	err := r.db.WithContext(ctx).
		Order("stage").
		Find(&dtos, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}

	records := make([]*stage.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
