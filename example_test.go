package affine_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/affine"
)

func ExampleMul() {
	l := affine.Translate(10, 0)
	r := affine.Rotate(affine.Degrees(90))

	// l is applied first, then r.
	p := affine.Mul(l, r).TransformPoint(affine.Pt(1, 0))
	fmt.Printf("%.1f %.1f\n", p.X, p.Y)
	// Output: 0.0 11.0
}

func ExampleDecompose() {
	m := affine.Identity()
	m.Scale(2, 2).RotateDegrees(30).Translate(5, 5)

	t := affine.Decompose(m)
	fmt.Printf("x=%.1f y=%.1f scale=%.2f,%.2f rotation=%.1f\n",
		t.X, t.Y, t.ScaleX, t.ScaleY, t.Rotation.Degrees())
	// Output: x=5.0 y=5.0 scale=2.00,2.00 rotation=30.0
}

func ExampleMatrix_Invert() {
	m := affine.NewMatrix(1, 0, 0, 0, 5, 7)
	if m.Determinant() == 0 {
		fmt.Println("singular")
	}
	m.Invert()
	fmt.Println(m)
	// Output:
	// singular
	// Matrix(a=0.0, b=0.0, c=0.0, d=0.0, tx=-5.0, ty=-7.0)
}

func ExampleMatrix_Type() {
	fmt.Println(affine.NewMatrix(2, 0, 0, 2, 5, 0).Type())
	// Output: SCALE_TRANSLATE
}

func ExampleInterpolateMatrix() {
	fmt.Println(affine.InterpolateMatrix(affine.Identity(), affine.NewMatrix(2, 0, 0, 2, 10, 10), 0.5))
	// Output: Matrix(a=1.5, b=0.0, c=0.0, d=1.5, tx=5.0, ty=5.0)
}

func ExampleInterpolateValues() {
	v, err := affine.InterpolateValues(affine.IntValue(0), affine.IntValue(10), 0.5)
	fmt.Println(v, err)

	_, err = affine.InterpolateValues(affine.Value{}, affine.Value{}, 0.5)
	fmt.Println(errors.Is(err, affine.ErrUnsupportedInterpolationKind))
	// Output:
	// 5 <nil>
	// true
}
