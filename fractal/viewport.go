package fractal

import "math"

// viewport maps pixel coordinates into the complex plane for one frame.
// The visible window is 3*aspect/zoom wide and 3/zoom tall, centered on the
// pan offset, rotated about its own center. Bounds and the rotation matrix
// are computed once per frame.
type viewport struct {
	columns  float64
	rows     float64
	minX     float64
	minY     float64
	rangeX   float64
	rangeY   float64
	centerX  float64
	centerY  float64
	cosTheta float64
	sinTheta float64
}

func newViewport(width int, height int, zoom float64, xOffset float64, yOffset float64, rotation float64) viewport {
	aspect := float64(width) / float64(height)
	rangeX := 3.0 * aspect / zoom
	rangeY := 3.0 / zoom
	minX := xOffset - rangeX/2.0
	maxX := xOffset + rangeX/2.0
	minY := yOffset - rangeY/2.0
	maxY := yOffset + rangeY/2.0

	radians := rotation * math.Pi / 180.0
	return viewport{
		columns:  float64(width),
		rows:     float64(height),
		minX:     minX,
		minY:     minY,
		rangeX:   maxX - minX,
		rangeY:   maxY - minY,
		centerX:  (minX + maxX) / 2.0,
		centerY:  (minY + maxY) / 2.0,
		cosTheta: math.Cos(radians),
		sinTheta: math.Sin(radians),
	}
}

// Point
// Converts the (column, row) pixel to the rotated point on the complex plane
// that seeds the iteration. The pixel maps by its fraction of the image, not
// its center, to match the reference output byte for byte.
func (v *viewport) Point(column int, row int) (float64, float64) {
	re := v.minX + (float64(column)/v.columns)*v.rangeX
	im := v.minY + (float64(row)/v.rows)*v.rangeY

	dx := re - v.centerX
	dy := im - v.centerY
	return dx*v.cosTheta - dy*v.sinTheta + v.centerX,
		dx*v.sinTheta + dy*v.cosTheta + v.centerY
}
