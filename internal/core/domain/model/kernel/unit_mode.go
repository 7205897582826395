package kernel

import (
	"regexp"

	"fulfillment/internal/pkg/errs"
)

// UnitMode is the unit convention of an order. It is fixed once per order from
// the packing hint of the first item: a hint that mentions both a kilogram
// figure and boxes means the operator assigns box counts, with weight tracked
// alongside; anything else means plain weight assignment.
type UnitMode int

const (
	// UnknownMode represents an uninitialized mode.
	UnknownMode UnitMode = iota

	// WeightMode tracks assignments in net weight (kg).
	WeightMode

	// BoxMode tracks assignments in box counts, converting to weight
	// proportionally against the item's total boxes and net weight.
	BoxMode
)

var (
	kgFigurePattern = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*kg`)
	boxWordPattern  = regexp.MustCompile(`(?i)box`)
)

// DetectUnitMode derives the unit mode from a packing-type hint such as
// "10kg box" or "loose, per kg".
func DetectUnitMode(packingHint string) UnitMode {
	if kgFigurePattern.MatchString(packingHint) && boxWordPattern.MatchString(packingHint) {
		return BoxMode
	}
	return WeightMode
}

// UnitModeFromString parses the wire representation ("weight" or "boxes").
func UnitModeFromString(s string) (UnitMode, error) {
	switch s {
	case "weight":
		return WeightMode, nil
	case "boxes":
		return BoxMode, nil
	default:
		return UnknownMode, errs.NewValueIsInvalidError("unitMode")
	}
}

// String returns the wire representation of the mode.
func (m UnitMode) String() string {
	switch m {
	case WeightMode:
		return "weight"
	case BoxMode:
		return "boxes"
	default:
		return ""
	}
}

// IsValid reports whether the mode has been determined.
func (m UnitMode) IsValid() bool {
	return m == WeightMode || m == BoxMode
}

// Validate returns an error unless the mode has been determined.
func (m UnitMode) Validate() error {
	if !m.IsValid() {
		return errs.NewValueIsInvalidError("unitMode")
	}
	return nil
}
