package affine

import (
	"math"

	"github.com/gogpu/affine/internal/numfmt"
	"github.com/gogpu/affine/interpolation"
)

// Matrix represents a 2D affine transformation.
// Points are treated as row vectors multiplied on the left:
//
//	          | A  B  0 |
//	(x y 1) * | C  D  0 | = (A*x + C*y + TX, B*x + D*y + TY, 1)
//	          | TX TY 1 |
//
// Any finite sextuple is a valid Matrix, singular ones included.
//
// Methods with a pointer receiver mutate the receiver in place and return
// it so calls can be chained:
//
//	m := affine.Identity()
//	m.Scale(2, 2).RotateDegrees(45).Translate(10, 0)
//
// Methods with a value receiver never modify the matrix. Matrix arguments
// are always taken by value, so m.Multiply(m, other) is safe.
//
// The zero Matrix is singular, not the identity; use [Identity].
type Matrix struct {
	A, B, C, D float64
	TX, TY     float64
}

// NewMatrix returns the matrix with the given coefficients.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, TX: tx, TY: ty}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, TX: x, TY: y}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate creates a rotation matrix.
func Rotate(angle Angle) Matrix {
	m := Identity()
	m.Rotate(angle)
	return m
}

// Skew creates a skew matrix with angles in radians.
func Skew(skewX, skewY float64) Matrix {
	m := Identity()
	m.Skew(skewX, skewY)
	return m
}

// Mul returns the matrix that applies l first, then r.
func Mul(l, r Matrix) Matrix {
	var m Matrix
	m.Multiply(l, r)
	return m
}

// SetTo overwrites all six coefficients.
func (m *Matrix) SetTo(a, b, c, d, tx, ty float64) *Matrix {
	m.A = a
	m.B = b
	m.C = c
	m.D = d
	m.TX = tx
	m.TY = ty
	return m
}

// CopyFrom overwrites the receiver with src.
func (m *Matrix) CopyFrom(src Matrix) *Matrix {
	*m = src
	return m
}

// SetIdentity resets the receiver to the identity.
func (m *Matrix) SetIdentity() *Matrix {
	return m.SetTo(1, 0, 0, 1, 0, 0)
}

// Clone returns a copy of the matrix.
func (m Matrix) Clone() Matrix {
	return m
}

// Scale post-composes a scale: the scale is applied to points after the
// current transformation.
func (m *Matrix) Scale(sx, sy float64) *Matrix {
	return m.SetTo(m.A*sx, m.B*sy, m.C*sx, m.D*sy, m.TX*sx, m.TY*sy)
}

// Prescale pre-composes a scale: input points are scaled before the
// current transformation.
func (m *Matrix) Prescale(sx, sy float64) *Matrix {
	return m.SetTo(m.A*sx, m.B*sx, m.C*sy, m.D*sy, m.TX, m.TY)
}

// Translate post-composes a translation.
func (m *Matrix) Translate(dx, dy float64) *Matrix {
	m.TX += dx
	m.TY += dy
	return m
}

// Pretranslate pre-composes a translation. The offset passes through the
// linear part of the current transformation.
func (m *Matrix) Pretranslate(dx, dy float64) *Matrix {
	m.TX += m.A*dx + m.C*dy
	m.TY += m.B*dx + m.D*dy
	return m
}

// Rotate post-composes a rotation.
func (m *Matrix) Rotate(angle Angle) *Matrix {
	cos := math.Cos(float64(angle))
	sin := math.Sin(float64(angle))

	a1 := m.A*cos - m.B*sin
	m.B = m.A*sin + m.B*cos
	m.A = a1

	c1 := m.C*cos - m.D*sin
	m.D = m.C*sin + m.D*cos
	m.C = c1

	tx1 := m.TX*cos - m.TY*sin
	m.TY = m.TX*sin + m.TY*cos
	m.TX = tx1
	return m
}

// RotateRadians post-composes a rotation of r radians.
func (m *Matrix) RotateRadians(r float64) *Matrix {
	return m.Rotate(Radians(r))
}

// RotateDegrees post-composes a rotation of d degrees.
func (m *Matrix) RotateDegrees(d float64) *Matrix {
	return m.Rotate(Degrees(d))
}

// Skew post-composes a skew. Both angles are in radians.
func (m *Matrix) Skew(skewX, skewY float64) *Matrix {
	sinX, cosX := math.Sincos(skewX)
	sinY, cosY := math.Sincos(skewY)

	return m.SetTo(
		m.A*cosY-m.B*sinX,
		m.A*sinY+m.B*cosX,
		m.C*cosY-m.D*sinX,
		m.C*sinY+m.D*cosX,
		m.TX*cosY-m.TY*sinX,
		m.TX*sinY+m.TY*cosX,
	)
}

// Prerotate pre-composes a rotation.
func (m *Matrix) Prerotate(angle Angle) *Matrix {
	return m.Premultiply(Rotate(angle))
}

// PrerotateRadians pre-composes a rotation of r radians.
func (m *Matrix) PrerotateRadians(r float64) *Matrix {
	return m.Prerotate(Radians(r))
}

// PrerotateDegrees pre-composes a rotation of d degrees.
func (m *Matrix) PrerotateDegrees(d float64) *Matrix {
	return m.Prerotate(Degrees(d))
}

// Preskew pre-composes a skew.
func (m *Matrix) Preskew(skewX, skewY float64) *Matrix {
	return m.Premultiply(Skew(skewX, skewY))
}

// Premultiply sets the receiver to l followed by the receiver's current
// transformation.
func (m *Matrix) Premultiply(l Matrix) *Matrix {
	return m.PremultiplyValues(l.A, l.B, l.C, l.D, l.TX, l.TY)
}

// PremultiplyValues is Premultiply with the leading matrix given as
// coefficients.
func (m *Matrix) PremultiplyValues(la, lb, lc, ld, ltx, lty float64) *Matrix {
	return m.SetTo(
		la*m.A+lb*m.C,
		la*m.B+lb*m.D,
		lc*m.A+ld*m.C,
		lc*m.B+ld*m.D,
		ltx*m.A+lty*m.C+m.TX,
		ltx*m.B+lty*m.D+m.TY,
	)
}

// Multiply stores in the receiver the matrix that applies l first, then r:
//
//	l.TransformPoint(p) then r.TransformPoint(...) == Mul(l, r).TransformPoint(p)
func (m *Matrix) Multiply(l, r Matrix) *Matrix {
	return m.SetTo(
		l.A*r.A+l.B*r.C,
		l.A*r.B+l.B*r.D,
		l.C*r.A+l.D*r.C,
		l.C*r.B+l.D*r.D,
		l.TX*r.A+l.TY*r.C+r.TX,
		l.TX*r.B+l.TY*r.D+r.TY,
	)
}

// Determinant returns A*D - B*C. Zero means the matrix is singular.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert replaces the receiver with its inverse.
func (m *Matrix) Invert() *Matrix {
	return m.InvertFrom(*m)
}

// InvertFrom stores the inverse of src in the receiver.
//
// InvertFrom never fails. When src is singular (determinant exactly zero)
// the receiver becomes the placeholder (0, 0, 0, 0, -src.TX, -src.TY),
// which is not an inverse. Check [Matrix.Determinant] first when the
// result must be trusted.
func (m *Matrix) InvertFrom(src Matrix) *Matrix {
	norm := src.A*src.D - src.B*src.C
	if norm == 0 {
		if debugEnabled() {
			Logger().Debug("affine: singular matrix inverted to placeholder", "matrix", src.String())
		}
		return m.SetTo(0, 0, 0, 0, -src.TX, -src.TY)
	}

	inorm := 1 / norm
	a := src.D * inorm
	b := src.B * -inorm
	c := src.C * -inorm
	d := src.A * inorm
	return m.SetTo(a, b, c, d, -a*src.TX-c*src.TY, -b*src.TX-d*src.TY)
}

// Inverted returns the inverse of m, with the same singular-matrix
// behavior as [Matrix.InvertFrom].
func (m Matrix) Inverted() Matrix {
	var out Matrix
	out.InvertFrom(m)
	return out
}

// TransformX returns the x coordinate of (px, py) after transformation.
func (m Matrix) TransformX(px, py float64) float64 {
	return m.A*px + m.C*py + m.TX
}

// TransformY returns the y coordinate of (px, py) after transformation.
func (m Matrix) TransformY(px, py float64) float64 {
	return m.D*py + m.B*px + m.TY
}

// TransformXY applies the transformation to (px, py).
func (m Matrix) TransformXY(px, py float64) (x, y float64) {
	return m.TransformX(px, py), m.TransformY(px, py)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.TransformX(p.X, p.Y), Y: m.TransformY(p.X, p.Y)}
}

// DeltaTransformPoint applies only the linear part, ignoring translation.
// Use it for directions and offsets.
func (m Matrix) DeltaTransformPoint(p Point) Point {
	return Point{X: p.X*m.A + p.Y*m.C, Y: p.X*m.B + p.Y*m.D}
}

// Keep runs fn and then restores the receiver's coefficients, whatever fn
// did to them, even if fn panics.
func (m *Matrix) Keep(fn func(m *Matrix)) {
	saved := *m
	defer func() { *m = saved }()
	fn(m)
}

// CreateBox sets the receiver to a scale and rotation followed by a
// translation to (tx, ty).
func (m *Matrix) CreateBox(scaleX, scaleY float64, rotation Angle, tx, ty float64) *Matrix {
	u := rotation.Cos()
	v := rotation.Sin()
	return m.SetTo(u*scaleX, v*scaleY, -v*scaleX, u*scaleY, tx, ty)
}

// gradientBoxSize is the side of the square gradient space that
// CreateGradientBox maps onto the target box.
const gradientBoxSize = 1638.4

// CreateGradientBox sets the receiver to map the square gradient space
// (-819.2..819.2 on both axes) onto a width x height box at (tx, ty).
func (m *Matrix) CreateGradientBox(width, height float64, rotation Angle, tx, ty float64) *Matrix {
	return m.CreateBox(width/gradientBoxSize, height/gradientBoxSize, rotation, tx+width/2, ty+height/2)
}

// InterpolateWith returns the coefficient-wise blend toward other.
// Blending coefficients does not blend rotations visually; decompose into
// [Transform] values for that.
func (m Matrix) InterpolateWith(other Matrix, ratio float64) Matrix {
	var out Matrix
	out.SetToInterpolated(m, other, ratio)
	return out
}

// SetToInterpolated stores in the receiver the blend of l and r.
func (m *Matrix) SetToInterpolated(l, r Matrix, ratio float64) *Matrix {
	return m.SetTo(
		interpolation.Float(l.A, r.A, ratio),
		interpolation.Float(l.B, r.B, ratio),
		interpolation.Float(l.C, r.C, ratio),
		interpolation.Float(l.D, r.D, ratio),
		interpolation.Float(l.TX, r.TX, ratio),
		interpolation.Float(l.TY, r.TY, ratio),
	)
}

// InterpolateMatrix returns a + (b-a)*ratio for every coefficient.
func InterpolateMatrix(a, b Matrix, ratio float64) Matrix {
	return a.InterpolateWith(b, ratio)
}

// String returns "Matrix(a=1.0, b=0.0, c=0.0, d=1.0, tx=0.0, ty=0.0)".
func (m Matrix) String() string {
	return "Matrix(a=" + numfmt.Float(m.A) +
		", b=" + numfmt.Float(m.B) +
		", c=" + numfmt.Float(m.C) +
		", d=" + numfmt.Float(m.D) +
		", tx=" + numfmt.Float(m.TX) +
		", ty=" + numfmt.Float(m.TY) + ")"
}
