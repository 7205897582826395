package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// EntityType identifies which supply-source directory an allocation draws from.
// It is a tagged variant: farmer, supplier and third-party directories have
// different shapes upstream, but rows and routes only ever carry this tag plus
// a resolved {id, name, location, address} snapshot.
type EntityType int

const (
	// UnknownEntity represents a blank selection. Rows without a resolved
	// entity are valid in memory but never produce a delivery route.
	UnknownEntity EntityType = iota

	// Farmer sources produce directly from a farm.
	Farmer

	// Supplier sources produce from a wholesale supplier.
	Supplier

	// ThirdParty sources produce from an external third party.
	ThirdParty
)

func entityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		UnknownEntity: "",
		Farmer:        "farmer",
		Supplier:      "supplier",
		ThirdParty:    "thirdParty",
	}
}

// EntityTypeFromString parses an entity type from its wire representation.
// Matching is case-insensitive and a blank string maps to UnknownEntity,
// since persisted assignments may legitimately have no selection yet.
func EntityTypeFromString(s string) (EntityType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return UnknownEntity, nil
	}

	for entityType, name := range entityTypeStrings() {
		if strings.ToLower(name) == normalized {
			return entityType, nil
		}
	}

	return UnknownEntity, errs.NewValueIsInvalidError("entityType")
}

// String returns the wire representation ("farmer", "supplier", "thirdParty").
// UnknownEntity renders as an empty string.
func (t EntityType) String() string {
	if name, ok := entityTypeStrings()[t]; ok {
		return name
	}
	return ""
}

// IsValid reports whether the type is one of the three known directories.
func (t EntityType) IsValid() bool {
	return t == Farmer || t == Supplier || t == ThirdParty
}

// IsEqual compares two entity types.
func (t EntityType) IsEqual(other EntityType) bool {
	return t == other
}

// Validate returns an error unless the type names a known directory.
func (t EntityType) Validate() error {
	if !t.IsValid() {
		return errs.NewValueIsInvalidError("entityType")
	}
	return nil
}
