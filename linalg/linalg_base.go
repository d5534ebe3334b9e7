package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Real is the set of element types accepted by the primitives.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var (
	// ErrDimensionMismatch is wrapped by the panic value when two operands
	// have different lengths.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrCrossDimension is wrapped by the panic value when a cross product
	// operand has an unsupported length.
	ErrCrossDimension = errors.New("linalg: unsupported cross product dimension")
)

// Float64s returns v as a []float64.
//
// A []float64 is returned unchanged. Any other element type is converted
// into a newly allocated slice, so the result never aliases a narrower or
// integer input.
func Float64s[T Real](v []T) []float64 {
	if f, ok := any(v).([]float64); ok {
		return f
	}
	return lo.Map(v, func(x T, _ int) float64 {
		return float64(x)
	})
}

// Dot computes the dot product of v1 and v2 in float64: Σ(v1[i] * v2[i]).
//
// Panics with an error wrapping ErrDimensionMismatch if the lengths differ.
// Returns 0 for empty vectors.
//
// Example:
//
//	Dot([]int{1, 2, 3}, []int{4, 5, 6}) // 32
func Dot[T Real](v1, v2 []T) float64 {
	if len(v1) != len(v2) {
		panic(fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(v1), len(v2)))
	}
	if len(v1) == 0 {
		return 0
	}
	return dotImpl(Float64s(v1), Float64s(v2))
}

// Cross computes the cross product of two 3-dimensional vectors in float64.
// The result is newly allocated.
//
// Panics with an error wrapping ErrCrossDimension unless both vectors have
// length 3. Use Cross2D for planar vectors.
//
// Example:
//
//	Cross([]float64{1, 0, 0}, []float64{0, 1, 0}) // [0 0 1]
func Cross[T Real](v1, v2 []T) []float64 {
	if len(v1) != 3 || len(v2) != 3 {
		panic(fmt.Errorf("%w: Cross needs 3 and 3, got %d and %d", ErrCrossDimension, len(v1), len(v2)))
	}
	return crossScalar(Float64s(v1), Float64s(v2))
}

// Cross2D computes the z component of the cross product of two planar
// vectors: v1[0]*v2[1] - v1[1]*v2[0].
//
// Panics with an error wrapping ErrCrossDimension unless both vectors have
// length 2.
func Cross2D[T Real](v1, v2 []T) float64 {
	if len(v1) != 2 || len(v2) != 2 {
		panic(fmt.Errorf("%w: Cross2D needs 2 and 2, got %d and %d", ErrCrossDimension, len(v1), len(v2)))
	}
	a, b := Float64s(v1), Float64s(v2)
	return a[0]*b[1] - a[1]*b[0]
}

// Norm computes the Euclidean (L2) norm of v in float64: sqrt(Σ v[i]²).
//
// It is evaluated as sqrt(Dot(v, v)) on the same kernel as Dot, so
// Dot(v, v) and Norm(v)*Norm(v) differ by at most the rounding of the
// square root. Returns 0 for an empty vector.
//
// The sum of squares is not rescaled. Components below about 1e-154 square
// to zero, so a vector made only of such values has Norm 0 (for example
// Norm([]float64{1e-200, 0}) == 0). Components above about 1e154 overflow
// and give +Inf.
func Norm[T Real](v []T) float64 {
	if len(v) == 0 {
		return 0
	}
	f := Float64s(v)
	return math.Sqrt(dotImpl(f, f))
}

// Backend returns the name of the dot product kernel currently selected:
// "blas" or "scalar".
func Backend() string {
	return backendImpl()
}
