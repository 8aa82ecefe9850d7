package palette

import (
	"math"
	"math/rand/v2"
)

// Color is a player color in HSL space. Hue is in degrees [0, 360),
// saturation and lightness are percentages.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

const (
	candidateStep = 5
	candidates    = 360 / candidateStep

	closenessThreshold = 25
	neighborhood       = 30
	perturbation       = 18

	minSaturation = 45
	maxSaturation = 90
	minLightness  = 40
	maxLightness  = 75

	defaultSaturation = 70
	defaultLightness  = 55
)

// hueDistance is the circular distance between two hues in degrees.
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

// Allocate picks a color for a new player given the colors already in use
// in the room. Candidate hues every 5 degrees are scored by their minimum
// circular distance to the existing hues, and the best-separated candidate
// wins. If even the winner lands closer than 25 degrees to a neighbor, the
// saturation and lightness are pushed away from the nearby colors so the
// result stays tellable apart.
func Allocate(existing []Color) Color {
	if len(existing) == 0 {
		return Color{
			H: float64(rand.IntN(360)),
			S: defaultSaturation,
			L: defaultLightness,
		}
	}

	bestHue := 0.0
	bestDistance := -1.0

	for i := 0; i < candidates; i++ {
		hue := float64(i * candidateStep)

		minDistance := 360.0
		for _, c := range existing {
			if d := hueDistance(hue, c.H); d < minDistance {
				minDistance = d
			}
		}

		if minDistance > bestDistance {
			bestDistance = minDistance
			bestHue = hue
		}
	}

	color := Color{H: bestHue, S: defaultSaturation, L: defaultLightness}

	if bestDistance < closenessThreshold {
		color.S, color.L = perturb(bestHue, existing)
	}

	return color
}

// perturb moves saturation and lightness away from the average of the
// colors within 30 degrees of hue, clamped to a range that keeps the
// color visible on the map.
func perturb(hue float64, existing []Color) (float64, float64) {
	var sumS, sumL float64
	close := 0

	for _, c := range existing {
		if hueDistance(hue, c.H) <= neighborhood {
			sumS += c.S
			sumL += c.L
			close++
		}
	}

	if close == 0 {
		return defaultSaturation, defaultLightness
	}

	avgS := sumS / float64(close)
	avgL := sumL / float64(close)

	return shiftAway(avgS, minSaturation, maxSaturation),
		shiftAway(avgL, minLightness, maxLightness)
}

// shiftAway returns a value at least the perturbation amount from avg,
// moving toward whichever end of [low, high] has more room.
func shiftAway(avg, low, high float64) float64 {
	if avg-low > high-avg {
		return clamp(avg-perturbation, low, high)
	}
	return clamp(avg+perturbation, low, high)
}

func clamp(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}
