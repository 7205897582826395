package stage

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// the NewRecord or RestoreRecord constructor.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Record is the persisted state of one (order, stage) pair: the whole stage
// payload plus the data-quality issues detected on save. Saves replace the
// record wholesale; there is no field-level merge in storage.
type Record struct {
	id      uuid.UUID
	orderID string
	stg     Stage

	payload Payload
	issues  []string

	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a record for the first save of an (order, stage) pair.
func NewRecord(orderID string, stg Stage, payload Payload, issues []string, now time.Time) (*Record, error) {
	return RestoreRecord(uuid.New(), orderID, stg, payload, issues, now)
}

// RestoreRecord reconstructs a record from storage.
func RestoreRecord(
	id uuid.UUID,
	orderID string,
	stg Stage,
	payload Payload,
	issues []string,
	updatedAt time.Time,
) (*Record, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := stg.Validate(); err != nil {
		return nil, err
	}

	copied := make([]string, len(issues))
	copy(copied, issues)

	return &Record{
		id:        id,
		orderID:   orderID,
		stg:       stg,
		payload:   payload,
		issues:    copied,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the record was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's storage identifier.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// OrderID returns the order this record belongs to.
func (r *Record) OrderID() string {
	return r.orderID
}

// Stage returns the pipeline stage this record belongs to.
func (r *Record) Stage() Stage {
	return r.stg
}

// Payload returns the stored stage payload.
func (r *Record) Payload() Payload {
	return r.payload
}

// Issues returns a copy of the data-quality issues recorded on last save.
func (r *Record) Issues() []string {
	out := make([]string, len(r.issues))
	copy(out, r.issues)
	return out
}

// UpdatedAt returns the time of the last save.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// Replace overwrites the payload and issues with the latest save.
func (r *Record) Replace(payload Payload, issues []string, now time.Time) {
	r.payload = payload
	r.issues = make([]string, len(issues))
	copy(r.issues, issues)
	r.updatedAt = now
}
