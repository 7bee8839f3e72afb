package fractal

import (
	"image/color"
	"testing"
)

func TestSettings_Verify_Defaults(t *testing.T) {
	s := Settings{}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify: %s", err)
	}

	if s.Width != 1920 || s.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", s.Width, s.Height)
	}
	if s.MaxIterations != 1000 {
		t.Errorf("MaxIterations = %d, want 1000", s.MaxIterations)
	}
	if s.Zoom != 1.0 {
		t.Errorf("Zoom = %v, want 1", s.Zoom)
	}
	if s.AlphaGamma != 1.0 {
		t.Errorf("AlphaGamma = %v, want 1", s.AlphaGamma)
	}
	if s.Variant != Standard {
		t.Errorf("Variant = %v, want Standard", s.Variant)
	}
	if s.Background.A != 255 {
		t.Errorf("Background.A = %d, want 255", s.Background.A)
	}
}

func TestSettings_Verify_Clamps(t *testing.T) {
	s := Settings{
		AlphaGamma:    -2,
		FadeBlack:     400,
		Height:        6,
		MaxIterations: 10,
		Stops:         make([]color.RGBA, 9),
		Variant:       Variant(11),
		Width:         8,
		Zoom:          -0.5,
	}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify: %s", err)
	}

	if s.FadeBlack != 255 {
		t.Errorf("FadeBlack = %v, want 255", s.FadeBlack)
	}
	if len(s.Stops) != MaxStops {
		t.Errorf("len(Stops) = %d, want %d", len(s.Stops), MaxStops)
	}
	if s.Variant != Standard {
		t.Errorf("Variant = %v, want Standard", s.Variant)
	}
	if s.Zoom != 1.0 {
		t.Errorf("Zoom = %v, want 1", s.Zoom)
	}
	if s.AlphaGamma != 1.0 {
		t.Errorf("AlphaGamma = %v, want 1", s.AlphaGamma)
	}
	if s.Width != 8 || s.Height != 6 {
		t.Errorf("dimensions = %dx%d, want 8x6 untouched", s.Width, s.Height)
	}

	s.FadeBlack = -3
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify: %s", err)
	}
	if s.FadeBlack != 0 {
		t.Errorf("FadeBlack = %v, want 0", s.FadeBlack)
	}
}
