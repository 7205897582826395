package stage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// FlexID is an identifier that historical payloads stored either as a JSON
// number or as a string. It always unmarshals to its string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

// Int64 parses the id as an integer, zero when it is blank or non-numeric.
// Fractional values from sloppy writers are truncated.
func (f FlexID) Int64() int64 {
	if n, err := strconv.ParseInt(string(f), 10, 64); err == nil {
		return n
	}
	if fl, err := strconv.ParseFloat(string(f), 64); err == nil {
		return int64(fl)
	}
	return 0
}

// FlexStrings is a name list that historical payloads stored either as a
// JSON array or as a single plain string.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = nil
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if s == "" {
			*f = nil
			return nil
		}
		*f = FlexStrings{s}
		return nil
	}
	var raw []any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	out := make(FlexStrings, 0, len(raw))
	for _, v := range raw {
		out = append(out, fmt.Sprint(v))
	}
	*f = out
	return nil
}

// AssignmentRecord is the wire form of one allocation row.
type AssignmentRecord struct {
	ID            FlexID          `json:"id"`
	Product       string          `json:"product"`
	NeededQty     kernel.Quantity `json:"neededQty"`
	NeededBoxes   kernel.Quantity `json:"neededBoxes"`
	EntityType    string          `json:"entityType"`
	EntityID      FlexID          `json:"entityId"`
	AssignedTo    string          `json:"assignedTo"`
	AssignedQty   kernel.Quantity `json:"assignedQty"`
	AssignedBoxes kernel.Quantity `json:"assignedBoxes"`
	Price         kernel.Quantity `json:"price"`
	Place         string          `json:"place,omitempty"`
	TapeColor     string          `json:"tapeColor,omitempty"`
}

// RouteRecord is the wire form of one delivery route.
type RouteRecord struct {
	RouteID          string          `json:"routeId"`
	SourceID         FlexID          `json:"sourceId"`
	Oiid             FlexID          `json:"oiid"`
	Product          string          `json:"product"`
	Location         string          `json:"location"`
	Address          string          `json:"address"`
	EntityType       string          `json:"entityType"`
	EntityID         FlexID          `json:"entityId"`
	Quantity         kernel.Quantity `json:"quantity"`
	AssignedBoxes    kernel.Quantity `json:"assignedBoxes"`
	IsRemaining      bool            `json:"isRemaining"`
	Driver           string          `json:"driver,omitempty"`
	Labours          FlexStrings     `json:"labours"`
	Status           string          `json:"status,omitempty"`
	DropDriver       string          `json:"dropDriver,omitempty"`
	CollectionStatus string          `json:"collectionStatus,omitempty"`
}

// UnmarshalJSON merges the legacy singular "labour" key into Labours when the
// modern key is absent.
func (r *RouteRecord) UnmarshalJSON(data []byte) error {
	type alias RouteRecord
	aux := struct {
		*alias
		Labour FlexStrings `json:"labour"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(r.Labours) == 0 && len(aux.Labour) > 0 {
		r.Labours = aux.Labour
	}
	return nil
}

// SummaryAssignmentRecord is one route line inside a driver's summary block.
type SummaryAssignmentRecord struct {
	Product     string          `json:"product"`
	EntityType  string          `json:"entityType"`
	EntityName  string          `json:"entityName"`
	Quantity    kernel.Quantity `json:"quantity"`
	Amount      kernel.Quantity `json:"amount"`
	Status      string          `json:"status,omitempty"`
	IsRemaining bool            `json:"isRemaining"`
	Oiid        string          `json:"oiid,omitempty"`
}

// DriverSummaryRecord aggregates one driver's routes.
type DriverSummaryRecord struct {
	Driver      string                    `json:"driver"`
	TotalWeight kernel.Quantity           `json:"totalWeight"`
	TotalAmount kernel.Quantity           `json:"totalAmount"`
	Assignments []SummaryAssignmentRecord `json:"assignments"`
}

// SummarySnapshot is the denormalized driver report written on every save.
// It is write-only: reads recompute from assignments and routes instead.
type SummarySnapshot struct {
	DriverAssignments []DriverSummaryRecord `json:"driverAssignments"`
	TotalCollections  int                   `json:"totalCollections"`
	TotalDrivers      int                   `json:"totalDrivers"`
	TotalWeight       kernel.Quantity       `json:"totalWeight"`
}

// Payload is the persisted JSON document of one (order, stage) pair.
type Payload struct {
	CollectionType string             `json:"collectionType"`
	Assignments    []AssignmentRecord `json:"productAssignments"`
	Routes         []RouteRecord      `json:"deliveryRoutes"`
	Summary        *SummarySnapshot   `json:"summaryData,omitempty"`
}

// unwrapJSONString undoes one level of double encoding: when the stored
// value is itself a JSON string, its contents are returned. Exactly one
// unwrap pass is applied.
func unwrapJSONString(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return trimmed
	}
	return []byte(inner)
}

// DecodeAssignments decodes a stored productAssignments field. Empty and
// null input decode to nil.
func DecodeAssignments(data []byte) ([]AssignmentRecord, error) {
	raw := unwrapJSONString(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []AssignmentRecord
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("productAssignments", err)
	}
	return out, nil
}

// DecodeRoutes decodes a stored deliveryRoutes field. Empty and null input
// decode to nil.
func DecodeRoutes(data []byte) ([]RouteRecord, error) {
	raw := unwrapJSONString(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []RouteRecord
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryRoutes", err)
	}
	return out, nil
}

// DecodeSummary decodes a stored summaryData field. Empty and null input
// decode to nil.
func DecodeSummary(data []byte) (*SummarySnapshot, error) {
	raw := unwrapJSONString(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out SummarySnapshot
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("summaryData", err)
	}
	return &out, nil
}

// EncodeAssignments encodes a productAssignments field for storage.
func EncodeAssignments(records []AssignmentRecord) ([]byte, error) {
	if records == nil {
		records = []AssignmentRecord{}
	}
	return json.Marshal(records)
}

// EncodeRoutes encodes a deliveryRoutes field for storage.
func EncodeRoutes(records []RouteRecord) ([]byte, error) {
	if records == nil {
		records = []RouteRecord{}
	}
	return json.Marshal(records)
}

// EncodeSummary encodes a summaryData field for storage.
func EncodeSummary(summary *SummarySnapshot) ([]byte, error) {
	if summary == nil {
		return []byte("null"), nil
	}
	return json.Marshal(summary)
}
