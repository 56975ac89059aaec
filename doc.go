// Package affine provides 2D affine transform algebra.
//
// # Overview
//
// A [Matrix] holds the six coefficients of an affine map
// (x, y) -> (A*x + C*y + TX, B*x + D*y + TY). A [Transform] holds the same
// map in editable parts: translation, scale, skew and rotation. The two
// convert into each other with [Decompose] and [Transform.ToMatrix];
// [Computed] keeps one of each side by side.
//
// # Quick Start
//
//	import "github.com/gogpu/affine"
//
//	// Local transform of a node, authored as parts.
//	local := affine.Transform{X: 10, ScaleX: 2, ScaleY: 2, Rotation: affine.Degrees(45)}
//
//	// Accumulate into the parent's world matrix: local first, then parent.
//	world := affine.Mul(local.ToMatrix(), parentWorld)
//
//	p := world.TransformPoint(affine.Pt(1, 1))
//
// # Mutation
//
// Methods with a pointer receiver (Scale, Rotate, Invert, ...) overwrite the
// receiver and return it for chaining. Methods with a value receiver never
// modify anything. Copy a Matrix before mutating it when it is shared
// between transform chains.
//
// # Composition Order
//
// Scale, Translate, Rotate and Skew post-compose: the new operation is
// applied to points after the existing map. The Pre variants (Prescale,
// Pretranslate, Prerotate, Preskew) apply the new operation first.
// [Mul](l, r) applies l, then r.
//
// # Errors
//
// The algebra never fails. Arithmetic problems surface as NaN or Inf, and
// inverting a singular matrix yields a documented placeholder. Check
// [Matrix.Determinant] when invertibility matters.
//
// # Coordinate System
//
// Angles are [Angle] values in radians; degrees are accepted only by the
// *Degrees helpers. With y pointing down, positive angles rotate clockwise
// on screen.
package affine
