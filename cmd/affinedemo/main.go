// Command affinedemo builds an affine matrix from flags, prints its
// classification, decomposition and inverse, and optionally warps a PNG
// through it.
//
// Usage:
//
//	affinedemo -matrix 2,0,0,2,10,10
//	affinedemo -sx 2 -sy 2 -rot 30 -x 5 -y 5 -to 1,0,0,1,0,0 -ratio 0.5
//	affinedemo -rot 15 -in photo.png -out rotated.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/affine"
	"golang.org/x/image/draw"
)

// matrixFlag parses "a,b,c,d,tx,ty".
type matrixFlag struct {
	m   affine.Matrix
	set bool
}

func (f *matrixFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.m.String()
}

func (f *matrixFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return fmt.Errorf("want 6 comma separated coefficients, got %d", len(parts))
	}
	var v [6]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("coefficient %d: %w", i+1, err)
		}
		v[i] = n
	}
	f.m = affine.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])
	f.set = true
	return nil
}

type config struct {
	matrix matrixFlag
	to     matrixFlag
	parts  affine.Transform
	rotDeg float64
	ratio  float64
	in     string
	out    string
	interp string
	// verbose enables debug logging to stderr.
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("affinedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&cfg.matrix, "matrix", "matrix coefficients a,b,c,d,tx,ty (overrides the part flags)")
	fs.Var(&cfg.to, "to", "second matrix a,b,c,d,tx,ty to interpolate toward")
	fs.Float64Var(&cfg.parts.X, "x", 0, "translation x")
	fs.Float64Var(&cfg.parts.Y, "y", 0, "translation y")
	fs.Float64Var(&cfg.parts.ScaleX, "sx", 1, "scale x")
	fs.Float64Var(&cfg.parts.ScaleY, "sy", 1, "scale y")
	fs.Float64Var(&cfg.parts.SkewX, "skewx", 0, "skew x in radians")
	fs.Float64Var(&cfg.parts.SkewY, "skewy", 0, "skew y in radians")
	fs.Float64Var(&cfg.rotDeg, "rot", 0, "rotation in degrees")
	fs.Float64Var(&cfg.ratio, "ratio", 0.5, "interpolation ratio for -to")
	fs.StringVar(&cfg.in, "in", "", "PNG to warp")
	fs.StringVar(&cfg.out, "out", "warped.png", "output PNG for -in")
	fs.StringVar(&cfg.interp, "interp", "bilinear", "warp interpolator: nearest, approxbilinear, bilinear, catmullrom")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.parts.Rotation = affine.Degrees(cfg.rotDeg)
	return cfg, nil
}

// selected returns the matrix described by the flags.
func (c *config) selected() affine.Matrix {
	if c.matrix.set {
		return c.matrix.m
	}
	return c.parts.ToMatrix()
}

func interpolator(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "approxbilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown interpolator %q", name)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		affine.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m := cfg.selected()
	c := affine.NewComputedFromMatrix(m)

	fmt.Fprintf(stdout, "matrix:      %v\n", c.Matrix)
	fmt.Fprintf(stdout, "type:        %v\n", m.Type())
	fmt.Fprintf(stdout, "determinant: %g\n", m.Determinant())
	fmt.Fprintf(stdout, "transform:   %v\n", c.Transform)
	fmt.Fprintf(stdout, "rotation:    %.4f deg\n", c.Transform.Rotation.Degrees())
	if m.Determinant() == 0 {
		fmt.Fprintf(stdout, "inverse:     %v (singular placeholder)\n", m.Inverted())
	} else {
		fmt.Fprintf(stdout, "inverse:     %v\n", m.Inverted())
	}

	if cfg.to.set {
		fmt.Fprintf(stdout, "lerp(%g):   %v\n", cfg.ratio, affine.InterpolateMatrix(m, cfg.to.m, cfg.ratio))
		tr := affine.InterpolateTransform(c.Transform, affine.Decompose(cfg.to.m), cfg.ratio)
		fmt.Fprintf(stdout, "lerp parts:  %v\n", tr)
	}

	if cfg.in != "" {
		if err := warpFile(cfg, m); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", cfg.out)
	}
	return nil
}

func warpFile(cfg *config, m affine.Matrix) error {
	interp, err := interpolator(cfg.interp)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.in)
	if err != nil {
		return err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.in, err)
	}

	// Size the output to the transformed source bounds.
	b := src.Bounds()
	corners := []affine.Point{
		affine.Pt(float64(b.Min.X), float64(b.Min.Y)),
		affine.Pt(float64(b.Max.X), float64(b.Min.Y)),
		affine.Pt(float64(b.Min.X), float64(b.Max.Y)),
		affine.Pt(float64(b.Max.X), float64(b.Max.Y)),
	}
	var dr image.Rectangle
	for i, p := range corners {
		q := m.TransformPoint(p)
		pt := image.Pt(int(q.X), int(q.Y))
		r := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}
		if i == 0 {
			dr = r
		} else {
			dr = dr.Union(r)
		}
	}

	dst := image.NewRGBA(dr)
	if err := affine.Warp(dst, src, m, affine.WithInterpolator(interp)); err != nil {
		return err
	}

	out, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := png.Encode(out, dst); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("affinedemo: %v", err)
	}
}
