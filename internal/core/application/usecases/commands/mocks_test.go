package commands_test

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/model/worksheet"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func testTime() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

// FakeWorksheetStore is a map-backed stand-in for the memstore adapter.
type FakeWorksheetStore struct {
	mu     sync.Mutex
	sheets map[string]*worksheet.Worksheet
}

func NewFakeWorksheetStore() *FakeWorksheetStore {
	return &FakeWorksheetStore{sheets: make(map[string]*worksheet.Worksheet)}
}

func storeKey(orderID string, stg stage.Stage) string {
	return orderID + "#" + stg.String()
}

func (s *FakeWorksheetStore) Get(_ context.Context, orderID string, stg stage.Stage) (*worksheet.Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.sheets[storeKey(orderID, stg)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("worksheet", storeKey(orderID, stg))
	}
	return ws, nil
}

func (s *FakeWorksheetStore) Put(_ context.Context, ws *worksheet.Worksheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[storeKey(ws.OrderID(), ws.Stage())] = ws
	return nil
}

func (s *FakeWorksheetStore) Remove(_ context.Context, orderID string, stg stage.Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sheets, storeKey(orderID, stg))
	return nil
}

func (s *FakeWorksheetStore) SweepIdle(_ context.Context, idleSince time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, ws := range s.sheets {
		if ws.UpdatedAt().Before(idleSince) {
			delete(s.sheets, key)
			removed++
		}
	}
	return removed, nil
}

// StubDirectory serves a fixed set of entities and drivers.
type StubDirectory struct {
	Entries []ports.DirectoryEntry
}

func NewStubDirectory() *StubDirectory {
	return &StubDirectory{Entries: []ports.DirectoryEntry{
		{ID: 7, Name: "Kumar", Address: "12 Main Rd", EntityType: kernel.Farmer},
		{ID: 3, Name: "Fresh Co", Address: "Market St", EntityType: kernel.Supplier},
	}}
}

func (d *StubDirectory) EntitiesByType(_ context.Context, entityType kernel.EntityType) ([]ports.DirectoryEntry, error) {
	var out []ports.DirectoryEntry
	for _, e := range d.Entries {
		if e.EntityType.IsEqual(entityType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (d *StubDirectory) ResolveEntity(_ context.Context, entityType kernel.EntityType, name string) (ports.DirectoryEntry, error) {
	for _, e := range d.Entries {
		if e.EntityType.IsEqual(entityType) && e.Name == name {
			return e, nil
		}
	}
	return ports.DirectoryEntry{}, errs.NewObjectNotFoundError("entity", name)
}

func (d *StubDirectory) Drivers(_ context.Context) ([]ports.DriverEntry, error) {
	return []ports.DriverEntry{{ID: 4, Name: "Raj"}}, nil
}

func (d *StubDirectory) Labours(_ context.Context) ([]ports.LabourEntry, error) {
	return []ports.LabourEntry{{ID: 1, Name: "Ravi"}}, nil
}

// StubCatalog serves a fixed price snapshot.
type StubCatalog struct {
	Catalog *product.Catalog
}

func NewStubCatalog() *StubCatalog {
	return &StubCatalog{Catalog: product.NewCatalog(map[string]kernel.Quantity{
		"Tomato": kernel.NewQuantityFromFloat(30),
		"Onion":  kernel.NewQuantityFromFloat(18),
	})}
}

func (c *StubCatalog) Snapshot(_ context.Context) (*product.Catalog, error) {
	return c.Catalog, nil
}

func (c *StubCatalog) Refresh(_ context.Context) error { return nil }

type MockStageRecordRepository struct{ mock.Mock }

func (m *MockStageRecordRepository) Add(ctx context.Context, record *stage.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStageRecordRepository) Update(ctx context.Context, record *stage.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStageRecordRepository) Get(ctx context.Context, orderID string, stg stage.Stage) (*stage.Record, error) {
	args := m.Called(ctx, orderID, stg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stage.Record), args.Error(1)
}

func (m *MockStageRecordRepository) GetAllForOrder(ctx context.Context, orderID string) ([]*stage.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stage.Record), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, orderID string) (*product.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) StageRecordRepository() ports.StageRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.StageRecordRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStageUoW struct{ mock.Mock }

func (m *MockStageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStageUoW) StageRecordRepository() ports.StageRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.StageRecordRepository)
}

type MockStageUoWFactory struct{ mock.Mock }

func (m *MockStageUoWFactory) Create() commands.StageUoW {
	args := m.Called()
	return args.Get(0).(commands.StageUoW)
}
