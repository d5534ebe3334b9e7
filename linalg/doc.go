// Package linalg provides the vector primitives used by the orbit solvers:
// dot product, cross product and Euclidean norm.
//
// # Precision
//
// Every function accepts a slice of any real element type (integers,
// float32, float64 and named types derived from them) and converts it to
// float64 before any arithmetic happens. The conversion is part of the
// contract: a dot product of float32 vectors is accumulated in float64 and
// is identical to the dot product of the same values supplied as float64.
//
//	a := []float32{16777216, 1}
//	b := []float32{1, 1}
//	linalg.Dot(a, b) // 16777217, not the float32 sum 16777216
//
// A []float64 argument is used as is; other element types are copied.
// Inputs are never modified.
//
// # Kernels
//
// The dot product (and therefore the norm) runs on a kernel chosen from the
// hwy dispatch level. On amd64 the BLAS Ddot routine from
// github.com/ziutek/blas is used; elsewhere, or when HWY_NO_SIMD is set, a
// portable unrolled loop is used. [Backend] reports which one is active.
//
// # Preconditions
//
// Mismatched lengths and unsupported cross-product dimensions are
// programming errors and panic with an error wrapping [ErrDimensionMismatch]
// or [ErrCrossDimension].
package linalg
