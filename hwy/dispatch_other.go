//go:build !amd64 && !arm64

package hwy

// Other architectures (wasm, riscv64, ...) run scalar kernels only.
func detectCPUFeatures() {
	setScalarMode()
}
