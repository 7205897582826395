// Package memstore holds the in-memory editing state between commands. A
// worksheet lives here from OpenStage until it is swept or replaced; losing
// one is harmless because the next open rebuilds it from the persisted
// payload, so no durability layer is needed.
package memstore

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/core/domain/model/worksheet"
	"fulfillment/internal/pkg/errs"
)

// WorksheetStore is a concurrency-safe in-memory worksheet store keyed by
// (order, stage).
type WorksheetStore struct {
	mu         sync.RWMutex
	worksheets map[string]*worksheet.Worksheet
}

// NewWorksheetStore creates an empty worksheet store.
func NewWorksheetStore() *WorksheetStore {
	return &WorksheetStore{
		worksheets: make(map[string]*worksheet.Worksheet),
	}
}

func storeKey(orderID string, stg stage.Stage) string {
	return orderID + "#" + stg.String()
}

// Get retrieves the worksheet of an (order, stage) pair.
func (s *WorksheetStore) Get(
	_ context.Context,
	orderID string,
	stg stage.Stage,
) (*worksheet.Worksheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.worksheets[storeKey(orderID, stg)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("worksheet", storeKey(orderID, stg))
	}
	return ws, nil
}

// Put stores a worksheet, replacing any previous one for the pair.
func (s *WorksheetStore) Put(_ context.Context, ws *worksheet.Worksheet) error {
	if err := ws.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.worksheets[storeKey(ws.OrderID(), ws.Stage())] = ws
	return nil
}

// Remove drops the worksheet of an (order, stage) pair, if present.
func (s *WorksheetStore) Remove(_ context.Context, orderID string, stg stage.Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.worksheets, storeKey(orderID, stg))
	return nil
}

// SweepIdle removes worksheets not touched since the given time and returns
// how many were dropped.
func (s *WorksheetStore) SweepIdle(_ context.Context, idleSince time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for key, ws := range s.worksheets {
		if ws.UpdatedAt().Before(idleSince) {
			delete(s.worksheets, key)
			swept++
		}
	}

	return swept, nil
}
