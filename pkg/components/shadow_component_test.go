package components

import (
	"math"
	"testing"
)

func TestShadowComponent_ApplyLift(t *testing.T) {
	tests := []struct {
		name      string
		lift      float64
		wantScale float64
	}{
		{"贴地", 0, 1},
		{"向下起伏不放大", -5, 1},
		{"抬高 6 像素", 6, 1 / 1.12},
		{"抬高 50 像素", 50, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShadowComponent{Width: 120, Height: 24, Alpha: 0.4}
			s.ApplyLift(tt.lift)
			if math.Abs(s.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("Scale = %v, want %v", s.Scale, tt.wantScale)
			}
		})
	}
}

func TestShadowComponent_CurrentAlpha(t *testing.T) {
	s := ShadowComponent{Alpha: 0.4}
	s.ApplyLift(50)

	if got := s.CurrentAlpha(); math.Abs(float64(got)-0.2) > 1e-6 {
		t.Errorf("CurrentAlpha() = %v, want 0.2", got)
	}
}
