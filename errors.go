package affine

import "errors"

var (
	// ErrUnsupportedInterpolationKind is returned by [InterpolateValues]
	// when a [Value] does not carry one of the supported kinds.
	ErrUnsupportedInterpolationKind = errors.New("affine: unsupported interpolation kind")

	// ErrKindMismatch is returned by [InterpolateValues] when both ends
	// of the interpolation hold different kinds.
	ErrKindMismatch = errors.New("affine: interpolation kinds differ")

	// ErrNilImage is returned by [Warp] when the source or destination is nil.
	ErrNilImage = errors.New("affine: nil image")

	// ErrSingularMatrix is returned by [Warp] for matrices with a zero
	// determinant. The algebra itself never returns it; see [Matrix.Invert].
	ErrSingularMatrix = errors.New("affine: singular matrix")
)
