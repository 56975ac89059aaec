package affine

import (
	"math"

	"github.com/gogpu/affine/internal/numfmt"
	"github.com/gogpu/affine/interpolation"
)

// Decomposition thresholds. Skew estimates inside (-π/4, π/4) recover the
// scale through the cosine, outside through the sine. Two skew estimates
// closer than rotationEpsilon are read as a single rotation.
const (
	quarterPi       = math.Pi / 4
	rotationEpsilon = 1e-4
)

// Transform is the editable form of a [Matrix]: translation, scale, skew
// and rotation.
//
// The decomposition is not unique: different skew and rotation pairs can
// produce the same matrix. [Transform.SetMatrix] picks one with a fixed
// heuristic.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	// SkewX and SkewY are in radians.
	SkewX, SkewY float64
	Rotation     Angle
}

// IdentityTransform returns the transform with unit scale and nothing else.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Decompose returns the transform [Transform.SetMatrix] derives from m.
func Decompose(m Matrix) Transform {
	var t Transform
	t.SetMatrix(m)
	return t
}

// SetTo overwrites every field.
func (t *Transform) SetTo(x, y, scaleX, scaleY float64, rotation Angle, skewX, skewY float64) *Transform {
	t.X = x
	t.Y = y
	t.ScaleX = scaleX
	t.ScaleY = scaleY
	t.Rotation = rotation
	t.SkewX = skewX
	t.SkewY = skewY
	return t
}

// CopyFrom overwrites the receiver with src.
func (t *Transform) CopyFrom(src Transform) *Transform {
	*t = src
	return t
}

// SetIdentity resets the receiver to [IdentityTransform].
func (t *Transform) SetIdentity() *Transform {
	*t = IdentityTransform()
	return t
}

// Clone returns a copy of the transform.
func (t Transform) Clone() Transform {
	return t
}

// SetMatrix decomposes m into the receiver.
//
// Translation is copied. Skews are estimated as atan(-C/D) and atan(B/A),
// with 0/0 clamped to zero. When both estimates agree within 1e-4 radians
// the matrix is read as a pure rotation and the skews are zeroed;
// otherwise rotation is zero and both skews are kept.
func (t *Transform) SetMatrix(m Matrix) *Transform {
	t.X = m.TX
	t.Y = m.TY

	t.SkewX = math.Atan(-m.C / m.D)
	t.SkewY = math.Atan(m.B / m.A)

	if math.IsNaN(t.SkewX) || math.IsNaN(t.SkewY) {
		if debugEnabled() {
			Logger().Debug("affine: clamping NaN skew", "matrix", m.String())
		}
		if math.IsNaN(t.SkewX) {
			t.SkewX = 0
		}
		if math.IsNaN(t.SkewY) {
			t.SkewY = 0
		}
	}

	if t.SkewX > -quarterPi && t.SkewX < quarterPi {
		t.ScaleY = m.D / math.Cos(t.SkewX)
	} else {
		t.ScaleY = -m.C / math.Sin(t.SkewX)
	}
	if t.SkewY > -quarterPi && t.SkewY < quarterPi {
		t.ScaleX = m.A / math.Cos(t.SkewY)
	} else {
		t.ScaleX = m.B / math.Sin(t.SkewY)
	}

	if math.Abs(t.SkewX-t.SkewY) < rotationEpsilon {
		t.Rotation = Radians(t.SkewX)
		t.SkewX = 0
		t.SkewY = 0
	} else {
		t.Rotation = 0
	}
	return t
}

// ToMatrix recomposes the transform.
func (t Transform) ToMatrix() Matrix {
	var m Matrix
	t.ToMatrixInto(&m)
	return m
}

// ToMatrixInto recomposes the transform into out and returns out.
func (t Transform) ToMatrixInto(out *Matrix) *Matrix {
	return out.SetTransform(t.X, t.Y, t.ScaleX, t.ScaleY, t.Rotation, t.SkewX, t.SkewY)
}

// SetTransform sets the receiver from decomposed parts.
//
// Without skew the result is built directly: (scaleX, 0, 0, scaleY, x, y)
// when rotation is zero, otherwise
// (cos·scaleX, sin·scaleY, -sin·scaleX, cos·scaleY, x, y).
// With skew the receiver is reset to identity and then scaled, skewed,
// rotated and translated, in that order.
func (m *Matrix) SetTransform(x, y, scaleX, scaleY float64, rotation Angle, skewX, skewY float64) *Matrix {
	if skewX == 0 && skewY == 0 {
		if rotation == 0 {
			return m.SetTo(scaleX, 0, 0, scaleY, x, y)
		}
		cos := rotation.Cos()
		sin := rotation.Sin()
		return m.SetTo(cos*scaleX, sin*scaleY, -sin*scaleX, cos*scaleY, x, y)
	}

	return m.SetIdentity().
		Scale(scaleX, scaleY).
		Skew(skewX, skewY).
		Rotate(rotation).
		Translate(x, y)
}

// InterpolateWith blends every field toward other. Rotation is blended as
// a plain scalar and does not wrap across ±π.
func (t Transform) InterpolateWith(other Transform, ratio float64) Transform {
	var out Transform
	out.SetToInterpolated(t, other, ratio)
	return out
}

// SetToInterpolated stores in the receiver the blend of l and r.
func (t *Transform) SetToInterpolated(l, r Transform, ratio float64) *Transform {
	return t.SetTo(
		interpolation.Float(l.X, r.X, ratio),
		interpolation.Float(l.Y, r.Y, ratio),
		interpolation.Float(l.ScaleX, r.ScaleX, ratio),
		interpolation.Float(l.ScaleY, r.ScaleY, ratio),
		l.Rotation.InterpolateWith(r.Rotation, ratio),
		interpolation.Float(l.SkewX, r.SkewX, ratio),
		interpolation.Float(l.SkewY, r.SkewY, ratio),
	)
}

// InterpolateTransform returns the field-wise blend of a and b.
func InterpolateTransform(a, b Transform, ratio float64) Transform {
	return a.InterpolateWith(b, ratio)
}

func (t Transform) String() string {
	return "Transform(x=" + numfmt.Float(t.X) +
		", y=" + numfmt.Float(t.Y) +
		", scaleX=" + numfmt.Float(t.ScaleX) +
		", scaleY=" + numfmt.Float(t.ScaleY) +
		", skewX=" + numfmt.Float(t.SkewX) +
		", skewY=" + numfmt.Float(t.SkewY) +
		", rotation=" + t.Rotation.String() + ")"
}
