package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T) *product.Order {
	t.Helper()
	item, err := product.NewOrderItem("OI-1", "Tomato",
		kernel.NewQuantityFromFloat(100), kernel.ZeroQuantity(), "loose per kg")
	require.NoError(t, err)
	order, err := product.NewOrder("ORD-1", []product.OrderItem{item})
	require.NoError(t, err)
	return order
}

func TestOpenStageCommandHandler_Handle_FreshStage(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOpenStageCommand("ORD-1", stage.Collection)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	recordRepo := new(MockStageRecordRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-1").Return(testOrder(t), nil).Once(),
		uow.On("StageRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("Get", mock.Anything, "ORD-1", stage.Collection).
			Return(nil, errs.NewObjectNotFoundError("record", "ORD-1")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	store := NewFakeWorksheetStore()
	h := commands.NewOpenStageCommandHandler(factory, NewStubCatalog(), NewStubDirectory(), store)
	require.NoError(t, h.Handle(ctx, cmd))

	ws, err := store.Get(ctx, "ORD-1", stage.Collection)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Rows().Len())

	row, err := ws.Rows().PrimaryRow("OI-1")
	require.NoError(t, err)
	assert.True(t, row.Price().IsEqual(kernel.NewQuantityFromFloat(30)))

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, recordRepo)
}

type failingCatalog struct{}

func (failingCatalog) Snapshot(context.Context) (*product.Catalog, error) {
	return nil, errors.New("catalog service is down")
}

func (failingCatalog) Refresh(context.Context) error {
	return errors.New("catalog service is down")
}

func TestOpenStageCommandHandler_Handle_CatalogFailureOpensWithoutPrices(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOpenStageCommand("ORD-1", stage.Collection)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	recordRepo := new(MockStageRecordRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-1").Return(testOrder(t), nil).Once(),
		uow.On("StageRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("Get", mock.Anything, "ORD-1", stage.Collection).
			Return(nil, errs.NewObjectNotFoundError("record", "ORD-1")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	store := NewFakeWorksheetStore()
	h := commands.NewOpenStageCommandHandler(factory, failingCatalog{}, NewStubDirectory(), store)
	require.NoError(t, h.Handle(ctx, cmd))

	ws, err := store.Get(ctx, "ORD-1", stage.Collection)
	require.NoError(t, err)

	row, err := ws.Rows().PrimaryRow("OI-1")
	require.NoError(t, err)
	assert.True(t, row.Price().IsZero())

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, recordRepo)
}

func TestOpenStageCommandHandler_Handle_SeedsFromPreviousStage(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOpenStageCommand("ORD-1", stage.Packaging)
	require.NoError(t, err)

	saved := stage.Payload{
		CollectionType: "Bag",
		Assignments: []stage.AssignmentRecord{{
			ID:          stage.FlexID("OI-1"),
			EntityType:  "farmer",
			AssignedTo:  "Kumar",
			AssignedQty: kernel.NewQuantityFromFloat(60),
		}},
	}
	record, err := stage.NewRecord("ORD-1", stage.Collection, saved, nil, testTime())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	recordRepo := new(MockStageRecordRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, "ORD-1").Return(testOrder(t), nil).Once(),
		uow.On("StageRecordRepository").Return(recordRepo).Once(),
		recordRepo.On("Get", mock.Anything, "ORD-1", stage.Packaging).
			Return(nil, errs.NewObjectNotFoundError("record", "ORD-1")).Once(),
		recordRepo.On("Get", mock.Anything, "ORD-1", stage.Collection).
			Return(record, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	store := NewFakeWorksheetStore()
	h := commands.NewOpenStageCommandHandler(factory, NewStubCatalog(), NewStubDirectory(), store)
	require.NoError(t, h.Handle(ctx, cmd))

	ws, err := store.Get(ctx, "ORD-1", stage.Packaging)
	require.NoError(t, err)

	row, err := ws.Rows().PrimaryRow("OI-1")
	require.NoError(t, err)
	assert.Equal(t, "Kumar", row.EntityName())
	assert.Equal(t, int64(7), row.EntityID())

	// 40kg shortfall carried over from the collection save.
	chain := ws.Rows().ItemRows("OI-1")
	require.Len(t, chain, 2)
	assert.True(t, chain[1].NeededAmount().IsEqual(kernel.NewQuantityFromFloat(40)))

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, recordRepo)
}

func TestOpenStageCommand_Validation(t *testing.T) {
	t.Run("blank order id is rejected", func(t *testing.T) {
		_, err := commands.NewOpenStageCommand("", stage.Collection)
		require.Error(t, err)
	})

	t.Run("unknown stage is rejected", func(t *testing.T) {
		_, err := commands.NewOpenStageCommand("ORD-1", stage.UnknownStage)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.OpenStageCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrOpenStageCommandIsNotConstructed)
	})
}
