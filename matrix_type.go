package affine

// MatrixType is the topology of a [Matrix] as reported by [Matrix.Type].
type MatrixType uint8

const (
	// MatrixIdentity maps every point to itself.
	MatrixIdentity MatrixType = iota + 1
	// MatrixTranslate only moves points.
	MatrixTranslate
	// MatrixScale only scales along the axes.
	MatrixScale
	// MatrixScaleTranslate scales along the axes, then moves.
	MatrixScaleTranslate
	// MatrixComplex has rotation or skew terms.
	MatrixComplex
)

// HasRotation reports whether the off-diagonal terms may be non-zero.
func (t MatrixType) HasRotation() bool {
	return t == MatrixComplex
}

// HasScale reports whether the diagonal may differ from 1.
func (t MatrixType) HasScale() bool {
	return t == MatrixScale || t == MatrixScaleTranslate || t == MatrixComplex
}

// HasTranslation reports whether the translation may be non-zero.
func (t MatrixType) HasTranslation() bool {
	return t == MatrixTranslate || t == MatrixScaleTranslate || t == MatrixComplex
}

func (t MatrixType) String() string {
	switch t {
	case MatrixIdentity:
		return "IDENTITY"
	case MatrixTranslate:
		return "TRANSLATE"
	case MatrixScale:
		return "SCALE"
	case MatrixScaleTranslate:
		return "SCALE_TRANSLATE"
	case MatrixComplex:
		return "COMPLEX"
	default:
		return "MatrixType(?)"
	}
}

// Type classifies the matrix.
//
// Comparisons are exact: a coefficient left at 1e-17 by round-off is
// treated as non-zero. Callers that build matrices through rotations and
// want a tolerant answer should clean up the coefficients first.
func (m Matrix) Type() MatrixType {
	hasRotation := m.B != 0 || m.C != 0
	hasScale := m.A != 1 || m.D != 1
	hasTranslation := m.TX != 0 || m.TY != 0

	switch {
	case hasRotation:
		return MatrixComplex
	case hasScale && hasTranslation:
		return MatrixScaleTranslate
	case hasScale:
		return MatrixScale
	case hasTranslation:
		return MatrixTranslate
	default:
		return MatrixIdentity
	}
}
