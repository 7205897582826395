package stage

import "fulfillment/internal/pkg/errs"

// Stage is one step of the fulfillment pipeline. Stages form a fixed
// sequence; opening a stage seeds it from the latest save of the previous
// one.
type Stage int

const (
	UnknownStage Stage = iota
	Collection
	Packaging
	Delivery
	Pricing
)

var stageNames = map[Stage]string{
	UnknownStage: "",
	Collection:   "collection",
	Packaging:    "packaging",
	Delivery:     "delivery",
	Pricing:      "pricing",
}

// StageFromString restores a Stage from its wire name.
func StageFromString(value string) (Stage, error) {
	for stg, name := range stageNames {
		if stg != UnknownStage && name == value {
			return stg, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidError("stage")
}

func (s Stage) String() string {
	return stageNames[s]
}

// IsValid reports whether the stage is a concrete pipeline step.
func (s Stage) IsValid() bool {
	return s >= Collection && s <= Pricing
}

func (s Stage) IsEqual(other Stage) bool {
	return s == other
}

// Validate checks the stage is a concrete pipeline step.
func (s Stage) Validate() error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidError("stage")
	}
	return nil
}

// Prev returns the preceding stage. The boolean is false for the first
// stage, which seeds from the order itself.
func (s Stage) Prev() (Stage, bool) {
	if s <= Collection || s > Pricing {
		return UnknownStage, false
	}
	return s - 1, true
}

// RequiresPricing reports whether saving this stage validates prices and
// computes monetary amounts.
func (s Stage) RequiresPricing() bool {
	return s == Pricing
}

// SupportsTapeColor reports whether the stage's allocation table carries the
// packaging tape color column.
func (s Stage) SupportsTapeColor() bool {
	return s == Packaging
}

// AllStages returns the pipeline stages in order.
func AllStages() []Stage {
	return []Stage{Collection, Packaging, Delivery, Pricing}
}
