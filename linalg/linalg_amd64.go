//go:build amd64

package linalg

import (
	"github.com/ziutek/blas"

	"github.com/lamberthub/go-linalg/hwy"
)

// dotImpl uses BLAS Ddot unless dispatch has fallen back to scalar mode.
func dotImpl(a, b []float64) float64 {
	if hwy.HasSIMD() {
		return dotBLAS(a, b)
	}
	return dotScalar(a, b)
}

func dotBLAS(a, b []float64) float64 {
	return blas.Ddot(min(len(a), len(b)), a, 1, b, 1)
}

func backendImpl() string {
	if hwy.HasSIMD() {
		return "blas"
	}
	return "scalar"
}
