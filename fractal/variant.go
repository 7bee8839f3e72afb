package fractal

import "math"

const (
	Standard Variant = iota
	Ship
	Tricorn
	Celtic
	Cosine
)

type Variant int

func (v Variant) String() string {
	if v < Standard || v > Cosine {
		v = Standard
	}
	return []string{
		"Standard", "Ship", "Tricorn", "Celtic", "Cosine",
	}[v]
}

// Iterate
// Runs the escape-time loop for this variant starting at (zRe, zIm) with the
// shared constant (cRe, cIm). Returns the number of iterations before the
// orbit left the escape radius, or maxIterations if it never did. Unknown
// variants fall back to Standard.
func (v Variant) Iterate(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	if maxIterations < 0 {
		return 0
	}
	switch v {
	case Ship:
		return iterateShip(zRe, zIm, cRe, cIm, maxIterations)
	case Tricorn:
		return iterateTricorn(zRe, zIm, cRe, cIm, maxIterations)
	case Celtic:
		return iterateCeltic(zRe, zIm, cRe, cIm, maxIterations)
	case Cosine:
		return iterateCosine(zRe, zIm, cRe, cIm, maxIterations)
	}
	return iterateStandard(zRe, zIm, cRe, cIm, maxIterations)
}

// z <- z^2 + c
func iterateStandard(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 4.0 {
			return i
		}
		zRe, zIm = zRe*zRe-zIm*zIm+cRe, 2*zRe*zIm+cIm
	}
	return maxIterations
}

// z <- (|Re z| + i|Im z|)^2 + c
func iterateShip(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 4.0 {
			return i
		}
		absRe := math.Abs(zRe)
		absIm := math.Abs(zIm)
		zRe, zIm = absRe*absRe-absIm*absIm+cRe, 2*absRe*absIm+cIm
	}
	return maxIterations
}

// z <- conj(z)^2 + c
func iterateTricorn(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 4.0 {
			return i
		}
		zRe, zIm = zRe*zRe-zIm*zIm+cRe, -2*zRe*zIm+cIm
	}
	return maxIterations
}

// z <- |Re(z^2)| + i Im(z^2) + c
// The absolute value wraps only the real part of the square. Folding this
// into the Ship rule changes the image; the placement differs on purpose.
func iterateCeltic(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 4.0 {
			return i
		}
		zRe, zIm = math.Abs(zRe*zRe-zIm*zIm)+cRe, 2*zRe*zIm+cIm
	}
	return maxIterations
}

// z <- cos(Re z)cosh(Im z) - i sin(Re z)sinh(Im z) + c
// The orbit grows much faster than the polynomial variants so the escape
// radius is 10 instead of 2. NaN from the hyperbolic overflow path compares
// false against the bound and is treated as non-escaping.
func iterateCosine(zRe float64, zIm float64, cRe float64, cIm float64, maxIterations int) int {
	for i := 0; i < maxIterations; i++ {
		if zRe*zRe+zIm*zIm > 100.0 {
			return i
		}
		zRe, zIm = math.Cos(zRe)*math.Cosh(zIm)+cRe, -math.Sin(zRe)*math.Sinh(zIm)+cIm
	}
	return maxIterations
}
