package queries

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/model/worksheet"
	"fulfillment/internal/pkg/errs"
)

func storeKey(orderID string, stg stage.Stage) string {
	return orderID + "#" + stg.String()
}

// FakeWorksheetStore is a map-backed stand-in for the memstore adapter.
type FakeWorksheetStore struct {
	mu     sync.Mutex
	sheets map[string]*worksheet.Worksheet
}

func NewFakeWorksheetStore() *FakeWorksheetStore {
	return &FakeWorksheetStore{sheets: make(map[string]*worksheet.Worksheet)}
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
