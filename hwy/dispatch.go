package hwy

import (
	"os"
	"strings"
)

// DispatchLevel identifies the instruction-set tier selected at startup.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

// String returns the lowercase name of the level.
func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar disables accelerated code paths when set to a truthy value.
const NoSimdEnvVar = "HWY_NO_SIMD"

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level detected for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes for the current level.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current dispatch target.
func CurrentName() string {
	return currentName
}

// HasSIMD reports whether an accelerated level is active.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether HWY_NO_SIMD asks for scalar-only execution.
// "1", "true", "yes" and "on" are accepted in any case.
func NoSimdEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(NoSimdEnvVar))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Reset re-runs detection, picking up changes to HWY_NO_SIMD.
// It is not safe to call concurrently with code that reads the dispatch level.
func Reset() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func init() {
	Reset()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
