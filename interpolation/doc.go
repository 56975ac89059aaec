// Package interpolation provides the ratio-based linear blend shared by
// every interpolable value in affine.
//
// A ratio of 0 yields the first value and 1 the second. Ratios are never
// clamped: values outside [0, 1] extrapolate.
package interpolation
