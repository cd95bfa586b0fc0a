package graphic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLToRGBPrimaries(t *testing.T) {
	cases := []struct {
		name    string
		h       float64
		r, g, b uint8
	}{
		{"red", 0, 255, 0, 0},
		{"yellow", 60, 254, 255, 0},
		{"green", 120, 0, 255, 0},
		{"cyan", 180, 0, 254, 255},
		{"blue", 240, 0, 0, 255},
		{"magenta", 300, 254, 0, 255},
	}

	for _, tc := range cases {
		r, g, b := HSLToRGB(tc.h, 100, 50)

		// Sector boundaries land one count shy of 255 from float rounding.
		assert.InDelta(t, tc.r, r, 1, "%s r", tc.name)
		assert.InDelta(t, tc.g, g, 1, "%s g", tc.name)
		assert.InDelta(t, tc.b, b, 1, "%s b", tc.name)
	}
}

func TestHSLToRGBGrays(t *testing.T) {
	r, g, b := HSLToRGB(0, 0, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	r, g, b = HSLToRGB(0, 0, 100)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	r, g, b = HSLToRGB(123, 0, 50)
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestBarHueSweep(t *testing.T) {
	const bars = 2049

	assert.Zero(t, BarHue(0, bars))

	last := BarHue(bars-1, bars)
	assert.Less(t, last, 360.0)
	assert.Greater(t, last, 359.0)

	// Strictly increasing across the whole sweep, hitting every sector.
	seen := make(map[int]bool)
	prev := -1.0
	for i := 0; i < bars; i++ {
		h := BarHue(i, bars)
		assert.Greater(t, h, prev)
		prev = h
		seen[int(h/60)] = true
	}
	assert.Len(t, seen, 6)
}
