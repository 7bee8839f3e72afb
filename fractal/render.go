// Package fractal renders escape-time Julia-family fractals to RGBA rasters.
// Every pixel supplies its own starting value while one constant from the
// settings drives the iteration, so each frame is a Julia-set-style map of
// the chosen variant.
package fractal

import (
	"image/color"
	"runtime"
	"sync"
)

// Render
// Produces one complete frame: a fresh row-major RGBA8 buffer of length
// Width*Height*4 whose ownership passes to the caller. The gradient table is
// built once, then rows are filled by a pool of workers; rows share only
// read-only state and write disjoint slices of the buffer, so the output is
// identical regardless of scheduling. Render never fails; out-of-range
// parameters are clamped or fall back to defaults instead.
func Render(settings Settings) []byte {
	if settings.Width <= 0 || settings.Height <= 0 {
		return []byte{}
	}

	lut := GradientLut(settings.Stops)
	view := newViewport(settings.Width, settings.Height, settings.Zoom, settings.XOffset, settings.YOffset, settings.Rotation)
	buffer := make([]byte, settings.Width*settings.Height*4)

	rows := make(chan int)
	go func() {
		for row := 0; row < settings.Height; row++ {
			rows <- row
		}
		close(rows)
	}()

	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				renderRow(row, &settings, &view, lut, buffer)
			}
		}()
	}
	wg.Wait()

	return buffer
}

func renderRow(row int, settings *Settings, view *viewport, lut []color.RGBA, buffer []byte) {
	offset := row * settings.Width * 4
	for column := 0; column < settings.Width; column++ {
		zRe, zIm := view.Point(column, row)
		iterations := settings.Variant.Iterate(zRe, zIm, settings.CRe, settings.CIm, settings.MaxIterations)
		pixel := composePixel(iterations, settings.MaxIterations, lut, settings.FadeBlack, settings.AlphaGamma, settings.Background, settings.Transparent)

		buffer[offset] = pixel.R
		buffer[offset+1] = pixel.G
		buffer[offset+2] = pixel.B
		buffer[offset+3] = pixel.A
		offset += 4
	}
}

// RenderFlat
// Wire-compatible entry point for foreign callers that pass every parameter
// positionally. colorsFlat holds up to five RGB triples packed sequentially;
// shorter input degrades to fewer gradient stops. An unknown fractalType
// renders as Standard. Values pass straight through to Render with no
// defaulting beyond what the pipeline itself clamps.
func RenderFlat(width int, height int, cRe float64, cIm float64, zoom float64, xOffset float64, yOffset float64, rotation float64, maxIterations int, fractalType int, colorsFlat []byte, bgRed uint8, bgGreen uint8, bgBlue uint8, fadeBlack float64, alphaGamma float64, transparent bool) []byte {
	variant := Variant(fractalType)
	if variant < Standard || variant > Cosine {
		variant = Standard
	}

	return Render(Settings{
		AlphaGamma:    alphaGamma,
		Background:    color.RGBA{R: bgRed, G: bgGreen, B: bgBlue, A: 255},
		CIm:           cIm,
		CRe:           cRe,
		FadeBlack:     fadeBlack,
		Height:        height,
		MaxIterations: maxIterations,
		Rotation:      rotation,
		Stops:         ParseStops(colorsFlat),
		Transparent:   transparent,
		Variant:       variant,
		Width:         width,
		XOffset:       xOffset,
		YOffset:       yOffset,
		Zoom:          zoom,
	})
}
