package fractal

import (
	"image/color"
	"math"
)

// The lookup index deliberately aliases: multiplying the raw iteration count
// before wrapping produces the repeating color bands the front-end expects.
// Changing the multiplier changes every image, so it stays.
const lutStride = 10

func lutIndex(iterations int) int {
	return (iterations * lutStride) % LutSize
}

// alphaByte derives coverage from the brightest channel of the looked-up
// color. fadeBlack sets the brightness floor below which a pixel is fully
// transparent; alphaGamma shapes the falloff curve. The result is clamped so
// hostile exponents cannot escape the byte range.
func alphaByte(brightness float64, fadeBlack float64, alphaGamma float64) uint8 {
	normalized := 0.0
	if fadeBlack < 255.0 {
		normalized = (brightness - fadeBlack) / (255.0 - fadeBlack)
		if normalized < 0.0 {
			normalized = 0.0
		} else if normalized > 1.0 {
			normalized = 1.0
		}
	}

	alpha := math.Round(math.Pow(normalized, alphaGamma) * 255.0)
	if math.IsNaN(alpha) || alpha < 0.0 {
		return 0
	}
	if alpha > 255.0 {
		return 255
	}
	return uint8(alpha)
}

// composePixel
// Turns an iteration count into the final RGBA pixel. Reaching the iteration
// cap marks the point as inside the set and forces full transparency no
// matter what the gradient says. In opaque mode the color is blended over the
// background and the alpha channel is pinned to 255.
func composePixel(iterations int, maxIterations int, lut []color.RGBA, fadeBlack float64, alphaGamma float64, background color.RGBA, transparent bool) color.RGBA {
	shade := lut[lutIndex(iterations)]
	brightness := float64(max(shade.R, max(shade.G, shade.B)))
	alpha := alphaByte(brightness, fadeBlack, alphaGamma)

	if transparent {
		if iterations >= maxIterations {
			alpha = 0
		}
		return color.RGBA{R: shade.R, G: shade.G, B: shade.B, A: alpha}
	}

	blend := float64(alpha) / 255.0
	if iterations >= maxIterations {
		blend = 0.0
	}
	return color.RGBA{
		R: uint8(float64(shade.R)*blend + float64(background.R)*(1.0-blend)),
		G: uint8(float64(shade.G)*blend + float64(background.G)*(1.0-blend)),
		B: uint8(float64(shade.B)*blend + float64(background.B)*(1.0-blend)),
		A: 255,
	}
}
