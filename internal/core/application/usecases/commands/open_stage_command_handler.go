package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// OpenStageCommandHandler rebuilds the editing worksheet of a stage and
// places it in the worksheet store. Opening is idempotent: reopening an
// already-open stage rebuilds it from the same persisted payload and lands
// on the same worksheet.
type OpenStageCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.ProductCatalog
	directory  ports.EntityDirectory
	store      ports.WorksheetStore
	reconciler services.Reconciler
	now        func() time.Time
}

// NewOpenStageCommandHandler creates a handler for opening stages.
func NewOpenStageCommandHandler(
	uowFactory UoWFactory,
	catalog ports.ProductCatalog,
	directory ports.EntityDirectory,
	store ports.WorksheetStore,
) OpenStageCommandHandler {
	return OpenStageCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		directory:  directory,
		store:      store,
		reconciler: services.NewReconciler(),
		now:        time.Now,
	}
}

// Handle loads the order and the best available payload, reconciles them
// into a worksheet and stores it.
//
// Payload priority: this stage's save, then the previous stage's save, then
// none. Reference data never blocks opening: an unreadable directory degrades
// to unresolved entities and an unreadable price snapshot to zero prices.
func (h *OpenStageCommandHandler) Handle(ctx context.Context, cmd OpenStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	payload, err := h.loadPayload(ctx, uow, cmd.OrderID(), cmd.Stage())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	catalog, err := h.catalog.Snapshot(ctx)
	if err != nil {
		slog.Warn("price snapshot unavailable, opening without prices",
			"orderId", cmd.OrderID(),
			"stage", cmd.Stage().String(),
			"error", err)
		catalog = nil
	}

	ws, err := h.reconciler.Materialize(
		order, catalog, cmd.Stage(), payload, h.entityResolver(ctx), h.now())
	if err != nil {
		return err
	}

	return h.store.Put(ctx, ws)
}

// loadPayload finds the payload to reconcile against, walking back one stage
// when the requested one has no save yet.
func (h *OpenStageCommandHandler) loadPayload(
	ctx context.Context,
	uow UoW,
	orderID string,
	stg stage.Stage,
) (*stage.Payload, error) {
	repo := uow.StageRecordRepository()

	record, err := repo.Get(ctx, orderID, stg)
	if err == nil {
		payload := record.Payload()
		return &payload, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	prev, ok := stg.Prev()
	if !ok {
		return nil, nil
	}

	record, err = repo.Get(ctx, orderID, prev)
	if err == nil {
		payload := record.Payload()
		return &payload, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	return nil, nil
}

// entityResolver adapts the directory port to the domain resolver. Directory
// failures degrade to "not found" so a flaky directory cannot block edits.
func (h *OpenStageCommandHandler) entityResolver(ctx context.Context) services.EntityResolver {
	return func(entityType kernel.EntityType, name string) (int64, string, bool) {
		entry, err := h.directory.ResolveEntity(ctx, entityType, name)
		if err != nil {
			return 0, "", false
		}
		return entry.ID, entry.Address, true
	}
}
