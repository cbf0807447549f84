// internal/utils/math.go
package utils

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
