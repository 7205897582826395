package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SaveStageCommandHandler flattens the open worksheet into a stage payload
// and persists it, replacing any previous save of the pair. The driver
// summary is recomputed on every save and stored with the payload.
type SaveStageCommandHandler struct {
	uowFactory StageUoWFactory
	store      ports.WorksheetStore
	aggregator services.DriverAggregator
	now        func() time.Time
}

// NewSaveStageCommandHandler creates a handler for stage saves.
func NewSaveStageCommandHandler(
	uowFactory StageUoWFactory,
	store ports.WorksheetStore,
) SaveStageCommandHandler {
	return SaveStageCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		aggregator: services.NewDriverAggregator(),
		now:        time.Now,
	}
}

// Handle processes the save. An incomplete worksheet fails validation before
// anything is written. Saving the same worksheet twice produces the same
// payload and simply overwrites the record.
func (h *SaveStageCommandHandler) Handle(ctx context.Context, cmd SaveStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ws, err := h.store.Get(ctx, cmd.OrderID(), cmd.Stage())
	if err != nil {
		return err
	}

	ws.SetCollectionType(cmd.CollectionType())

	if err = ws.ValidateForSave(); err != nil {
		return err
	}

	summary := h.aggregator.Summarize(ws.Stage(), ws.Rows(), ws.Routes())
	payload := ws.BuildPayload(summary)
	issues := ws.Issues()
	savedAt := h.now()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StageRecordRepository()

	record, err := repo.Get(ctx, cmd.OrderID(), cmd.Stage())
	switch {
	case err == nil:
		record.Replace(payload, issues, savedAt)
		if err = repo.Update(ctx, record); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		record, err = stage.NewRecord(cmd.OrderID(), cmd.Stage(), payload, issues, savedAt)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, record); err != nil {
			return err
		}
	default:
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	ws.Touch(savedAt)
	return h.store.Put(ctx, ws)
}
