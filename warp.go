package affine

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Warp draws src onto dst, mapping source coordinates to destination
// coordinates through m.
//
// Unlike the matrix algebra, Warp validates its input: it returns
// ErrNilImage for missing images and ErrSingularMatrix when m has a zero
// determinant.
func Warp(dst draw.Image, src image.Image, m Matrix, opts ...WarpOption) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	if m.Determinant() == 0 {
		return fmt.Errorf("warp %v: %w", m, ErrSingularMatrix)
	}

	o := defaultWarpOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sr := src.Bounds()
	if o.sr != nil {
		sr = o.sr.Intersect(sr)
	}

	Logger().Debug("affine: warp",
		"type", m.Type().String(),
		"src", sr.String(),
		"dst", dst.Bounds().String())

	o.interp.Transform(dst, m.Aff3(), src, sr, o.op, nil)
	return nil
}
