package affine

import (
	"math"

	"github.com/gogpu/affine/internal/numfmt"
	"github.com/gogpu/affine/interpolation"
)

// Angle is a plane angle stored in radians.
//
// Degrees only appear at API boundaries: [Degrees], [Angle.Degrees],
// [Matrix.RotateDegrees] and [Matrix.PrerotateDegrees].
type Angle float64

const (
	degreesToRadians = math.Pi / 180
	radiansToDegrees = 180 / math.Pi
)

// Radians returns an angle of r radians.
func Radians(r float64) Angle {
	return Angle(r)
}

// Degrees returns an angle of d degrees.
func Degrees(d float64) Angle {
	return Angle(d * degreesToRadians)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * radiansToDegrees
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// InterpolateWith blends toward other as a plain scalar. It does not take
// the shortest path and does not wrap across ±π.
func (a Angle) InterpolateWith(other Angle, ratio float64) Angle {
	return interpolation.Float(a, other, ratio)
}

// String formats the angle as "<radians>rad".
func (a Angle) String() string {
	return numfmt.Float(float64(a)) + "rad"
}
