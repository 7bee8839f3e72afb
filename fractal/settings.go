package fractal

import (
	"image/color"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings holds every parameter of one frame. A Settings value is read-only
// for the duration of a Render call.
type Settings struct {
	logger bslogger.Logger

	AlphaGamma    float64
	Background    color.RGBA
	CIm           float64
	CRe           float64
	FadeBlack     float64
	Height        int
	MaxIterations int
	Rotation      float64
	Stops         []color.RGBA
	Transparent   bool
	Variant       Variant
	Width         int
	XOffset       float64
	YOffset       float64
	Zoom          float64
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	if s.AlphaGamma <= 0 {
		s.AlphaGamma = 1.0
	}
	s.Background.A = 255
	if s.FadeBlack < 0 {
		s.FadeBlack = 0
	}
	if s.FadeBlack > 255 {
		s.FadeBlack = 255
	}
	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = 1000
	}
	if len(s.Stops) > MaxStops {
		s.Stops = s.Stops[:MaxStops]
		s.logger.Infof("Truncating gradient to %d stops.", MaxStops)
	}
	if s.Variant < Standard || s.Variant > Cosine {
		s.Variant = Standard
	}
	if s.Width <= 0 {
		s.Width = 1920
	}
	if s.Zoom <= 0 {
		s.Zoom = 1.0
	}

	return nil
}
