package interpolation

import "golang.org/x/exp/constraints"

// Interpolable is implemented by values that can blend toward another
// value of the same type.
type Interpolable[T any] interface {
	InterpolateWith(other T, ratio float64) T
}

// Float returns a + (b-a)*ratio.
func Float[T constraints.Float](a, b T, ratio float64) T {
	return a + (b-a)*T(ratio)
}

// Int returns a + (b-a)*ratio truncated toward zero.
func Int[T constraints.Integer](a, b T, ratio float64) T {
	return a + T(float64(b-a)*ratio)
}

// Between blends a toward b using a's own interpolation.
func Between[T Interpolable[T]](a, b T, ratio float64) T {
	return a.InterpolateWith(b, ratio)
}
