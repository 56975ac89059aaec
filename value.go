package affine

import (
	"fmt"
	"strconv"

	"github.com/gogpu/affine/interpolation"
)

// Kind identifies what a [Value] holds.
type Kind uint8

// Supported value kinds. The zero Kind is invalid.
const (
	KindInvalid Kind = iota
	KindInt
	KindInt64
	KindFloat
	KindAngle
	KindPoint
	KindMatrix
	KindTransform
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindInt:       "int",
	KindInt64:     "int64",
	KindFloat:     "float",
	KindAngle:     "angle",
	KindPoint:     "point",
	KindMatrix:    "matrix",
	KindTransform: "transform",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a closed union of the interpolable kinds, for callers (such as
// keyframe tracks) that store heterogeneous animated properties.
// The zero Value is invalid.
type Value struct {
	kind Kind
	i    int64
	f    float64
	p    Point
	m    Matrix
	t    Transform
}

// IntValue returns a Value holding v.
func IntValue(v int) Value { return Value{kind: KindInt, i: int64(v)} }

// Int64Value returns a Value holding v.
func Int64Value(v int64) Value { return Value{kind: KindInt64, i: v} }

// FloatValue returns a Value holding v.
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }

// AngleValue returns a Value holding v.
func AngleValue(v Angle) Value { return Value{kind: KindAngle, f: float64(v)} }

// PointValue returns a Value holding v.
func PointValue(v Point) Value { return Value{kind: KindPoint, p: v} }

// MatrixValue returns a Value holding v.
func MatrixValue(v Matrix) Value { return Value{kind: KindMatrix, m: v} }

// TransformValue returns a Value holding v.
func TransformValue(v Transform) Value { return Value{kind: KindTransform, t: v} }

// Kind returns the kind held by v.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer held by a KindInt or KindInt64 value.
func (v Value) Int() int64 { return v.i }

// Float returns the number held by a KindFloat or KindAngle value.
func (v Value) Float() float64 { return v.f }

// Angle returns the angle held by a KindAngle value.
func (v Value) Angle() Angle { return Angle(v.f) }

// Point returns the point held by a KindPoint value.
func (v Value) Point() Point { return v.p }

// Matrix returns the matrix held by a KindMatrix value.
func (v Value) Matrix() Matrix { return v.m }

// Transform returns the transform held by a KindTransform value.
func (v Value) Transform() Transform { return v.t }

func (v Value) String() string {
	switch v.kind {
	case KindInt, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindAngle:
		return v.Angle().String()
	case KindPoint:
		return v.p.String()
	case KindMatrix:
		return v.m.String()
	case KindTransform:
		return v.t.String()
	default:
		return "<" + v.kind.String() + ">"
	}
}

// InterpolateValues blends a toward b. Both values must hold the same
// supported kind. Integers truncate toward zero; every other kind uses
// its own InterpolateWith. The ratio is not clamped.
func InterpolateValues(a, b Value, ratio float64) (Value, error) {
	if a.kind != b.kind {
		return Value{}, fmt.Errorf("%w: %s and %s", ErrKindMismatch, a.kind, b.kind)
	}

	switch a.kind {
	case KindInt:
		return IntValue(interpolation.Int(int(a.i), int(b.i), ratio)), nil
	case KindInt64:
		return Int64Value(interpolation.Int(a.i, b.i, ratio)), nil
	case KindFloat:
		return FloatValue(interpolation.Float(a.f, b.f, ratio)), nil
	case KindAngle:
		return AngleValue(interpolation.Between(a.Angle(), b.Angle(), ratio)), nil
	case KindPoint:
		return PointValue(interpolation.Between(a.p, b.p, ratio)), nil
	case KindMatrix:
		return MatrixValue(interpolation.Between(a.m, b.m, ratio)), nil
	case KindTransform:
		return TransformValue(interpolation.Between(a.t, b.t, ratio)), nil
	}

	Logger().Debug("affine: rejected interpolation", "kind", a.kind.String())
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedInterpolationKind, a.kind)
}
