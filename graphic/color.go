package graphic

import "math"

// HSLToRGB converts a hue in degrees [0, 360) with saturation and lightness
// in percent to 8-bit channels, using the six-sector piecewise formula.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	c := (1 - math.Abs(2*l/100-1)) * (s / 100)
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l/100 - c/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	r = uint8((r1 + m) * 255)
	g = uint8((g1 + m) * 255)
	b = uint8((b1 + m) * 255)
	return r, g, b
}

// BarHue returns the hue for bar idx out of bars total, sweeping the color
// wheel exactly once from red at bin 0 back toward (but never reaching) red.
func BarHue(idx, bars int) float64 {
	return float64(idx) / float64(bars) * 360
}
