package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// HostLevel names the widest vector instruction set the host CPU reports.
//
// The vector types in this package are plain Go arrays and behave the same
// on every platform. HostLevel only tells callers how many bytes fit in one
// native register, e.g. to choose between F32x4 and F32x8 kernels.
type HostLevel int

const (
	// HostScalar indicates no usable vector registers, or HWY_NO_SIMD is set.
	HostScalar HostLevel = iota

	// HostSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	HostSSE2

	// HostAVX2 indicates AVX2 (256-bit).
	HostAVX2

	// HostAVX512 indicates AVX-512F (512-bit).
	HostAVX512

	// HostNEON indicates ARM NEON (128-bit).
	HostNEON

	// HostSVE indicates ARM SVE. The register width is implementation
	// defined; at least 128 bits are guaranteed.
	HostSVE
)

// String returns a human-readable name for the level.
func (l HostLevel) String() string {
	switch l {
	case HostScalar:
		return "scalar"
	case HostSSE2:
		return "sse2"
	case HostAVX2:
		return "avx2"
	case HostAVX512:
		return "avx512"
	case HostNEON:
		return "neon"
	case HostSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Set once by init from detectHost in host_*.go.
var (
	hostLevel HostLevel
	hostWidth int
)

func init() {
	if NoSimdEnv() {
		hostLevel, hostWidth = HostScalar, 0
		return
	}
	hostLevel, hostWidth = detectHost()
}

// Host returns the detected vector instruction set.
func Host() HostLevel {
	return hostLevel
}

// HostWidth returns the native register width in bytes: 16 for SSE2, NEON
// and SVE, 32 for AVX2, 64 for AVX-512 and 0 for scalar.
func HostWidth() int {
	return hostWidth
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the host is reported as scalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many lanes of T fit in one native register.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes, so F32x8 is a single register
//   - float64: 32/8 = 4 lanes
//   - uint8: 32 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return hostWidth / int(unsafe.Sizeof(dummy))
}
