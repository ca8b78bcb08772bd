package page

import "math"

// EaseInOutCubic: slow start, fast middle, slow end. t in [0, 1].
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutCubic: fast start, slow end.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
