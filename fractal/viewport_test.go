package fractal

import (
	"math"
	"testing"
)

const coordinateTolerance = 1e-12

func closeEnough(got float64, want float64) bool {
	return math.Abs(got-want) <= coordinateTolerance
}

func TestViewport_Point_Unrotated(t *testing.T) {
	view := newViewport(4, 4, 1.0, 0, 0, 0)

	tests := []struct {
		column, row  int
		wantRe, wantIm float64
	}{
		{0, 0, -1.5, -1.5},
		{2, 2, 0, 0},
		{3, 1, 0.75, -0.75},
	}

	for _, tt := range tests {
		re, im := view.Point(tt.column, tt.row)
		if !closeEnough(re, tt.wantRe) || !closeEnough(im, tt.wantIm) {
			t.Errorf("Point(%d, %d) = (%v, %v), want (%v, %v)",
				tt.column, tt.row, re, im, tt.wantRe, tt.wantIm)
		}
	}
}

// The window is 3*aspect/zoom by 3/zoom, centered on the pan offset.
func TestViewport_Point_WindowExtents(t *testing.T) {
	view := newViewport(8, 4, 0.5, 1.0, -2.0, 0)

	re, im := view.Point(0, 0)
	if !closeEnough(re, 1.0-6.0) || !closeEnough(im, -2.0-3.0) {
		t.Errorf("Point(0, 0) = (%v, %v), want (-5, -5)", re, im)
	}
}

func TestViewport_Point_ZeroRotationMatchesUnrotated(t *testing.T) {
	const width, height = 13, 9
	view := newViewport(width, height, 1.7, 0.4, -0.3, 0)

	aspect := float64(width) / float64(height)
	rangeX := 3.0 * aspect / 1.7
	rangeY := 3.0 / 1.7
	minX := 0.4 - rangeX/2.0
	minY := -0.3 - rangeY/2.0

	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			re, im := view.Point(column, row)
			wantRe := minX + (float64(column)/width)*rangeX
			wantIm := minY + (float64(row)/height)*rangeY
			if !closeEnough(re, wantRe) || !closeEnough(im, wantIm) {
				t.Fatalf("Point(%d, %d) = (%v, %v), want (%v, %v)",
					column, row, re, im, wantRe, wantIm)
			}
		}
	}
}

func TestViewport_Point_QuarterTurn(t *testing.T) {
	view := newViewport(4, 2, 2.0, 0.5, -0.25, 90.0)

	tests := []struct {
		column, row  int
		wantRe, wantIm float64
	}{
		{0, 0, 1.25, -1.75},
		{1, 1, 0.5, -1.0},
		{3, 0, 1.25, 0.5},
		{2, 1, 0.5, -0.25}, // window center is a fixed point of the rotation
	}

	for _, tt := range tests {
		re, im := view.Point(tt.column, tt.row)
		if !closeEnough(re, tt.wantRe) || !closeEnough(im, tt.wantIm) {
			t.Errorf("Point(%d, %d) = (%v, %v), want (%v, %v)",
				tt.column, tt.row, re, im, tt.wantRe, tt.wantIm)
		}
	}
}

func TestViewport_Point_FullTurnMatchesZero(t *testing.T) {
	plain := newViewport(10, 10, 1.0, 0.1, 0.2, 0)
	turned := newViewport(10, 10, 1.0, 0.1, 0.2, 360.0)

	for row := 0; row < 10; row += 3 {
		for column := 0; column < 10; column += 3 {
			re0, im0 := plain.Point(column, row)
			re1, im1 := turned.Point(column, row)
			if !closeEnough(re0, re1) || !closeEnough(im0, im1) {
				t.Fatalf("Point(%d, %d): 360 degrees gave (%v, %v), 0 degrees gave (%v, %v)",
					column, row, re1, im1, re0, im0)
			}
		}
	}
}
