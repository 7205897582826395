package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectUnitMode(t *testing.T) {
	testCases := []struct {
		name     string
		hint     string
		expected kernel.UnitMode
	}{
		{"kg figure with box word", "10kg Box", kernel.BoxMode},
		{"kg figure with spacing", "12.5 kg per box", kernel.BoxMode},
		{"kg only", "per kg, loose", kernel.WeightMode},
		{"box only without kg figure", "box packed", kernel.WeightMode},
		{"empty hint", "", kernel.WeightMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, kernel.DetectUnitMode(tc.hint))
		})
	}
}

func TestUnitModeFromString(t *testing.T) {
	mode, err := kernel.UnitModeFromString("weight")
	require.NoError(t, err)
	assert.Equal(t, kernel.WeightMode, mode)

	mode, err = kernel.UnitModeFromString("boxes")
	require.NoError(t, err)
	assert.Equal(t, kernel.BoxMode, mode)

	_, err = kernel.UnitModeFromString("crates")
	require.Error(t, err)
}

func TestUnitMode_Validate(t *testing.T) {
	require.NoError(t, kernel.WeightMode.Validate())
	require.NoError(t, kernel.BoxMode.Validate())
	require.Error(t, kernel.UnknownMode.Validate())
}
