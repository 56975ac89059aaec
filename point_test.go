package affine

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add() = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub() = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul() = %v, want (6, 8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Point
	}{
		{"start", 0, Pt(0, 10)},
		{"end", 1, Pt(10, 0)},
		{"middle", 0.5, Pt(5, 5)},
		{"extrapolate", 2, Pt(20, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pt(0, 10).Lerp(Pt(10, 0), tt.t)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
			if other := Pt(0, 10).InterpolateWith(Pt(10, 0), tt.t); other != got {
				t.Errorf("InterpolateWith(%v) = %v, want %v", tt.t, other, got)
			}
		})
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(1, -2.5).String(); got != "Point(1.0, -2.5)" {
		t.Errorf("String() = %q", got)
	}
}
