package allocation

import "fulfillment/internal/pkg/errs"

// Place is the pickup place of an allocation row: the farmer's own place or
// the company's collection point.
type Place int

const (
	UnknownPlace Place = iota
	FarmerPlace
	OwnPlace
)

var placeNames = map[Place]string{
	UnknownPlace: "",
	FarmerPlace:  "Farmer place",
	OwnPlace:     "Own place",
}

// PlaceFromString restores a Place from its display string. Blank input is
// accepted as UnknownPlace: the pickup place is an optional annotation.
func PlaceFromString(value string) (Place, error) {
	for place, name := range placeNames {
		if name == value {
			return place, nil
		}
	}
	return UnknownPlace, errs.NewValueIsInvalidError("place")
}

func (p Place) String() string {
	return placeNames[p]
}

// IsValid reports whether the place is one of the known values, including
// UnknownPlace.
func (p Place) IsValid() bool {
	_, ok := placeNames[p]
	return ok
}

func (p Place) IsEqual(other Place) bool {
	return p == other
}

// Validate checks the place holds a known value.
func (p Place) Validate() error {
	if !p.IsValid() {
		return errs.NewValueIsInvalidError("place")
	}
	return nil
}
