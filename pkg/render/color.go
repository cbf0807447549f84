// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	PathColor       color.RGBA
	BuildableColor  color.RGBA
	StrokeColor     color.RGBA
	StrokeWidth     float32
}

// HealthColors are the bar colors from full to nearly dead.
type HealthColors struct {
	Back color.RGBA
	Good color.RGBA
	Mid  color.RGBA
	Low  color.RGBA
}

// Pick returns the bar color for a health ratio in [0, 1].
func (h HealthColors) Pick(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return h.Good
	case ratio > 0.3:
		return h.Mid
	}
	return h.Low
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
