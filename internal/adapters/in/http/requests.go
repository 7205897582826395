package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Bind into a request DTO, then ctx.Validate before use.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates an echo request validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct tag validation on a bound request.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// AssignSourceRequest is the body of a row edit. A blank assignedTo clears
// the row's source.
type AssignSourceRequest struct {
	RowID         string  `json:"rowId"      validate:"required"`
	EntityType    string  `json:"entityType"`
	AssignedTo    string  `json:"assignedTo"`
	AssignedQty   float64 `json:"assignedQty"   validate:"gte=0"`
	AssignedBoxes float64 `json:"assignedBoxes" validate:"gte=0"`
	Price         float64 `json:"price"         validate:"gte=0"`
	Place         string  `json:"place"`
	TapeColor     string  `json:"tapeColor"`
}

// SetDriverRequest is the body of a route transport edit.
type SetDriverRequest struct {
	Driver           string   `json:"driver"`
	Labours          []string `json:"labours"`
	Status           string   `json:"status"`
	DropDriver       string   `json:"dropDriver"`
	CollectionStatus string   `json:"collectionStatus"`
}

// SaveStageRequest is the body of a stage save. CollectionType is optional;
// blank keeps the worksheet's current value.
type SaveStageRequest struct {
	CollectionType string `json:"collectionType"`
}

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
