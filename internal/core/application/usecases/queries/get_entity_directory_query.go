package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetEntityDirectoryQueryIsNotConstructed = errors.New(
		"GetEntityDirectoryQuery must be created via NewGetEntityDirectoryQuery constructor",
	)
	ErrDirectoryKindIsInvalid = errors.New("directory kind is invalid")
)

// Directory kinds servable by the directory query. Source entity kinds match
// the entity type wire names; drivers and labours are separate pools.
const (
	DirectoryKindFarmer     = "farmer"
	DirectoryKindSupplier   = "supplier"
	DirectoryKindThirdParty = "thirdParty"
	DirectoryKindDriver     = "driver"
	DirectoryKindLabour     = "labour"
)

// GetEntityDirectoryQuery retrieves one kind of directory listing: the
// source entities of a type, the driver pool or the labour pool. Used by the
// editing UI to populate its pickers.
type GetEntityDirectoryQuery struct {
	kind string

	guard guard.ConstructorGuard
}

// NewGetEntityDirectoryQuery creates a query for one directory kind.
func NewGetEntityDirectoryQuery(kind string) (GetEntityDirectoryQuery, error) {
	switch kind {
	case DirectoryKindFarmer, DirectoryKindSupplier, DirectoryKindThirdParty,
		DirectoryKindDriver, DirectoryKindLabour:
	default:
		return GetEntityDirectoryQuery{}, ErrDirectoryKindIsInvalid
	}

	return GetEntityDirectoryQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEntityDirectoryQuery) Validate() error {
	return q.guard.Validate(ErrGetEntityDirectoryQueryIsNotConstructed)
}

// Kind returns the directory kind being listed.
func (q GetEntityDirectoryQuery) Kind() string {
	return q.kind
}

// GetEntityDirectoryQueryResponse is one directory listing entry. Address is
// blank for drivers and labours.
type GetEntityDirectoryQueryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
