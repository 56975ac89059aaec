package affine

import (
	"testing"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestAff3(t *testing.T) {
	m := NewMatrix(1, 2, 3, 4, 5, 6)
	want := f64.Aff3{1, 3, 5, 2, 4, 6}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := MatrixFromAff3(want); got != m {
		t.Errorf("MatrixFromAff3() = %v, want %v", got, m)
	}
}

func TestAff3MapsLikeMatrix(t *testing.T) {
	m := Mul(Rotate(Degrees(30)), Translate(4, -2))
	a := m.Aff3()
	x, y := 3.0, 5.0
	ax := a[0]*x + a[1]*y + a[2]
	ay := a[3]*x + a[4]*y + a[5]
	wx, wy := m.TransformXY(x, y)
	if ax != wx || ay != wy {
		t.Errorf("Aff3 maps (3, 5) to (%v, %v), Matrix to (%v, %v)", ax, ay, wx, wy)
	}
}

func TestTransformFixed(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   fixed.Point26_6
		want fixed.Point26_6
	}{
		{"identity", Identity(), fixed.P(3, 4), fixed.P(3, 4)},
		{"translate", Translate(1, 2), fixed.P(3, 4), fixed.P(4, 6)},
		{"scale half", Scale(0.5, 0.5), fixed.P(3, 4), fixed.Point26_6{X: 96, Y: 128}},
		{"rounds", Scale(1.0/3, 1), fixed.Point26_6{X: 1, Y: 0}, fixed.Point26_6{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformFixed(tt.in); got != tt.want {
				t.Errorf("TransformFixed(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
