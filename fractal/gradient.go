package fractal

import (
	"image/color"

	"github.com/malinduGamage/FRACTALIS/misc"
)

// LutSize is the fixed number of entries in a gradient lookup table.
const LutSize = 1024

// MaxStops is the most control colors a gradient will use; extras are dropped.
const MaxStops = 5

// GradientLut
// Expands up to MaxStops control colors into a LutSize lookup table. The table
// is split into one equal-width segment per consecutive color pair, with the
// last segment absorbing the rounding remainder so the table is always exactly
// LutSize entries long. Channels are linearly interpolated across each
// segment. Fewer than two stops yields an all-black table.
func GradientLut(stops []color.RGBA) []color.RGBA {
	lut := make([]color.RGBA, LutSize)
	for i := range lut {
		lut[i] = color.RGBA{A: 255}
	}
	if len(stops) > MaxStops {
		stops = stops[:MaxStops]
	}
	if len(stops) < 2 {
		return lut
	}

	segments := len(stops) - 1
	size := LutSize / segments
	for i := 0; i < segments; i++ {
		start := i * size
		end := start + size
		if i == segments-1 {
			end = LutSize
		}
		span := end - start
		for j := 0; j < span; j++ {
			fraction := 0.0
			if span > 1 {
				fraction = float64(j) / float64(span-1)
			}
			lut[start+j] = misc.LinearInterpolationRGB(stops[i], stops[i+1], fraction)
		}
	}
	return lut
}

// ParseStops
// Unpacks gradient control colors from a flat byte sequence of RGB triples,
// at most MaxStops of them. A short or truncated sequence simply yields fewer
// stops; it is never an error.
func ParseStops(colorsFlat []byte) []color.RGBA {
	stops := make([]color.RGBA, 0, MaxStops)
	for i := 0; i < MaxStops; i++ {
		offset := i * 3
		if offset+2 >= len(colorsFlat) {
			break
		}
		stops = append(stops, color.RGBA{
			R: colorsFlat[offset],
			G: colorsFlat[offset+1],
			B: colorsFlat[offset+2],
			A: 255,
		})
	}
	return stops
}
