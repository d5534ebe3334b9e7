//go:build !amd64

package linalg

// dotImpl is the scalar-only implementation used off amd64.
func dotImpl(a, b []float64) float64 {
	return dotScalar(a, b)
}

func backendImpl() string {
	return "scalar"
}
