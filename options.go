package affine

import (
	"image"

	"golang.org/x/image/draw"
)

// WarpOption configures [Warp].
type WarpOption func(*warpOptions)

type warpOptions struct {
	interp draw.Transformer
	op     draw.Op
	sr     *image.Rectangle
}

func defaultWarpOptions() warpOptions {
	return warpOptions{
		interp: draw.BiLinear,
		op:     draw.Over,
	}
}

// WithInterpolator selects the resampling kernel. The default is
// draw.BiLinear; draw.NearestNeighbor keeps hard pixel edges.
func WithInterpolator(t draw.Transformer) WarpOption {
	return func(o *warpOptions) {
		if t != nil {
			o.interp = t
		}
	}
}

// WithOp selects the compositing operator. The default is draw.Over.
func WithOp(op draw.Op) WarpOption {
	return func(o *warpOptions) {
		o.op = op
	}
}

// WithSourceRect restricts the warp to part of the source image.
// The default is the whole source.
func WithSourceRect(r image.Rectangle) WarpOption {
	return func(o *warpOptions) {
		o.sr = &r
	}
}
