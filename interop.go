package affine

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Aff3 returns m in the row-major layout of golang.org/x/image, where
// x' = a[0]*x + a[1]*y + a[2] and y' = a[3]*x + a[4]*y + a[5].
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.TX,
		m.B, m.D, m.TY,
	}
}

// MatrixFromAff3 is the inverse of [Matrix.Aff3].
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], C: a[1], TX: a[2],
		B: a[3], D: a[4], TY: a[5],
	}
}

// TransformFixed applies the transformation to a 26.6 fixed point
// coordinate, rounding to the nearest 1/64.
func (m Matrix) TransformFixed(p fixed.Point26_6) fixed.Point26_6 {
	x, y := m.TransformXY(float64(p.X)/64, float64(p.Y)/64)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}
