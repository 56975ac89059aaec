package affine

// Computed pairs a [Matrix] with its [Transform].
//
// The two halves are consistent only at construction. Changing either
// field afterwards leaves the other stale; build a new Computed instead.
type Computed struct {
	Matrix    Matrix
	Transform Transform
}

// NewComputedFromMatrix keeps a copy of m and decomposes it.
func NewComputedFromMatrix(m Matrix) Computed {
	return Computed{Matrix: m, Transform: Decompose(m)}
}

// NewComputedFromTransform keeps a copy of t and recomposes it.
func NewComputedFromTransform(t Transform) Computed {
	return Computed{Matrix: t.ToMatrix(), Transform: t}
}
