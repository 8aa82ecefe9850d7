package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateFirstColor(t *testing.T) {
	color := Allocate(nil)

	assert.GreaterOrEqual(t, color.H, 0.0)
	assert.Less(t, color.H, 360.0)
	assert.Equal(t, float64(defaultSaturation), color.S)
	assert.Equal(t, float64(defaultLightness), color.L)
}

func TestAllocateOppositeOfSingleColor(t *testing.T) {
	color := Allocate([]Color{{H: 0, S: 70, L: 55}})

	assert.Equal(t, 180.0, color.H)
}

func TestAllocateTieBreaksOnFirstCandidate(t *testing.T) {
	// 90 and 270 are both 90 degrees from every existing hue; the
	// lower hue wins.
	color := Allocate([]Color{
		{H: 0, S: 70, L: 55},
		{H: 180, S: 70, L: 55},
	})

	assert.Equal(t, 90.0, color.H)
}

func TestAllocateKeepsHueSeparation(t *testing.T) {
	existing := [][]Color{
		{{H: 0, S: 70, L: 55}},
		{{H: 10, S: 70, L: 55}, {H: 130, S: 70, L: 55}},
		{{H: 0, S: 70, L: 55}, {H: 40, S: 70, L: 55}, {H: 80, S: 70, L: 55}},
		{
			{H: 0, S: 70, L: 55}, {H: 50, S: 70, L: 55},
			{H: 100, S: 70, L: 55}, {H: 150, S: 70, L: 55},
			{H: 200, S: 70, L: 55},
		},
	}

	for _, colors := range existing {
		allocated := Allocate(colors)
		for _, c := range colors {
			assert.GreaterOrEqual(t, hueDistance(allocated.H, c.H), 25.0,
				"hue %v too close to existing %v", allocated.H, c.H)
		}
	}
}

func TestAllocatePerturbsWhenCrowded(t *testing.T) {
	// Hues every 10 degrees leave no candidate 25 degrees clear, so
	// saturation and lightness must move away from the neighborhood
	// average while staying in the visible range.
	var crowded []Color
	for h := 0; h < 360; h += 10 {
		crowded = append(crowded, Color{H: float64(h), S: 70, L: 55})
	}

	color := Allocate(crowded)

	require.GreaterOrEqual(t, color.S, float64(minSaturation))
	require.LessOrEqual(t, color.S, float64(maxSaturation))
	require.GreaterOrEqual(t, color.L, float64(minLightness))
	require.LessOrEqual(t, color.L, float64(maxLightness))

	assert.GreaterOrEqual(t, abs(color.S-70), 15.0)
	assert.GreaterOrEqual(t, abs(color.L-55), 15.0)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
