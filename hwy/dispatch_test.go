package hwy

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{" yes ", true},
		{"on", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(NoSimdEnvVar, tt.value)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestResetHonoursNoSimd(t *testing.T) {
	t.Cleanup(Reset)

	t.Setenv(NoSimdEnvVar, "1")
	Reset()
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, "scalar", CurrentName())
	assert.Equal(t, 16, CurrentWidth())
	assert.False(t, HasSIMD())
}

func TestDetectedLevelMatchesArch(t *testing.T) {
	t.Cleanup(Reset)

	t.Setenv(NoSimdEnvVar, "")
	Reset()

	assert.Equal(t, CurrentLevel().String(), CurrentName())
	switch runtime.GOARCH {
	case "amd64":
		assert.Contains(t, []DispatchLevel{DispatchSSE2, DispatchAVX2, DispatchAVX512}, CurrentLevel())
		assert.True(t, HasSIMD())
	case "arm64":
		assert.Contains(t, []DispatchLevel{DispatchScalar, DispatchNEON}, CurrentLevel())
	default:
		assert.Equal(t, DispatchScalar, CurrentLevel())
	}
	assert.GreaterOrEqual(t, CurrentWidth(), 16)
}
