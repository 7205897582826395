// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStageViewQueryIsNotConstructed = errors.New(
	"GetStageViewQuery must be created via NewGetStageViewQuery constructor",
)

// GetStageViewQuery retrieves the current editing state of an (order, stage)
// pair: the allocation table with live shortfalls and the derived routes.
type GetStageViewQuery struct {
	orderID string
	stg     stage.Stage

	guard guard.ConstructorGuard
}

// NewGetStageViewQuery creates a query for a stage's editing view.
func NewGetStageViewQuery(orderID string, stg stage.Stage) (GetStageViewQuery, error) {
	if orderID == "" {
		return GetStageViewQuery{}, errors.New("order id is required")
	}
	if err := stg.Validate(); err != nil {
		return GetStageViewQuery{}, err
	}

	return GetStageViewQuery{
		orderID: orderID,
		stg:     stg,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStageViewQuery) Validate() error {
	return q.guard.Validate(ErrGetStageViewQueryIsNotConstructed)
}

// OrderID returns the order being viewed.
func (q GetStageViewQuery) OrderID() string {
	return q.orderID
}

// Stage returns the stage being viewed.
func (q GetStageViewQuery) Stage() stage.Stage {
	return q.stg
}

// RowView is one allocation row in the read model. Quantities are rendered
// as floats for the transport layer; the displayed shortfall is already
// clamped at zero.
type RowView struct {
	RowID         string   `json:"rowId"`
	Product       string   `json:"product"`
	IsRemaining   bool     `json:"isRemaining"`
	NeededQty     float64  `json:"neededQty"`
	NeededBoxes   float64  `json:"neededBoxes"`
	EntityType    string   `json:"entityType"`
	EntityID      int64    `json:"entityId"`
	AssignedTo    string   `json:"assignedTo"`
	AssignedQty   float64  `json:"assignedQty"`
	AssignedBoxes float64  `json:"assignedBoxes"`
	Price         float64  `json:"price"`
	Amount        float64  `json:"amount"`
	ExcessToStock float64  `json:"excessToStock"`
	Place         string   `json:"place,omitempty"`
	TapeColor     string   `json:"tapeColor,omitempty"`
}

// RouteView is one derived route in the read model.
type RouteView struct {
	RouteID          string   `json:"routeId"`
	Oiid             string   `json:"oiid"`
	Product          string   `json:"product"`
	Location         string   `json:"location"`
	Address          string   `json:"address"`
	EntityType       string   `json:"entityType"`
	EntityID         int64    `json:"entityId"`
	Quantity         float64  `json:"quantity"`
	AssignedBoxes    float64  `json:"assignedBoxes"`
	IsRemaining      bool     `json:"isRemaining"`
	Driver           string   `json:"driver,omitempty"`
	Labours          []string `json:"labours"`
	Status           string   `json:"status,omitempty"`
	DropDriver       string   `json:"dropDriver,omitempty"`
	CollectionStatus string   `json:"collectionStatus,omitempty"`
}

// GetStageViewQueryResponse is the stage editing view.
type GetStageViewQueryResponse struct {
	OrderID        string      `json:"orderId"`
	Stage          string      `json:"stage"`
	UnitMode       string      `json:"unitMode"`
	CollectionType string      `json:"collectionType"`
	Rows           []RowView   `json:"rows"`
	Routes         []RouteView `json:"routes"`
	Issues         []string    `json:"issues"`
}
