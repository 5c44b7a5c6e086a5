package anim

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
)

// innerColour picks the inner circle colour for a line angle. In colour mode
// the hue is angle/180 of a full turn, so the wheel goes round twice per
// revolution. Channels are rounded to the nearest integer.
func innerColour(angle float64, enabled bool) color.Color {
	if !enabled {
		return config.InnerColour
	}
	hue := math.Mod(angle/180, 1) * 360
	r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
	if err != nil {
		return config.InnerColour
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
