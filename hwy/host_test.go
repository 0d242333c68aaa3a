package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostLevelString(t *testing.T) {
	tests := []struct {
		level HostLevel
		want  string
	}{
		{HostScalar, "scalar"},
		{HostSSE2, "sse2"},
		{HostAVX2, "avx2"},
		{HostAVX512, "avx512"},
		{HostNEON, "neon"},
		{HostSVE, "sve"},
		{HostLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("HostLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestHostWidth(t *testing.T) {
	width := HostWidth()
	assert.Contains(t, []int{0, 16, 32, 64}, width)
	if Host() == HostScalar {
		assert.Zero(t, width)
	} else {
		assert.Positive(t, width)
	}
}

func TestMaxLanes(t *testing.T) {
	w := HostWidth()
	assert.Equal(t, w/4, MaxLanes[float32]())
	assert.Equal(t, w/8, MaxLanes[float64]())
	assert.Equal(t, w, MaxLanes[uint8]())
	assert.Equal(t, w/2, MaxLanes[int16]())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}
