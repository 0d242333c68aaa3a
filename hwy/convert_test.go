package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFloatToIntTruncates(t *testing.T) {
	assert.Equal(t, NewI32x4(1, -1, 2, -2), NewF32x4(1.9, -1.9, 2.1, -2.1).ToI())
	assert.Equal(t, NewI64x4(1, -1, 2, -2), NewF64x4(1.9, -1.9, 2.1, -2.1).ToI())
	assert.Equal(t, NewU32x2(3, 0), NewF32x2(3.7, 0.2).ToU())
	assert.Equal(t, NewU64x4(0, 1, 7, 1<<40), NewF64x4(0.5, 1.5, 7.99, 1<<40).ToU())
}

func TestIntToFloat(t *testing.T) {
	assert.Equal(t, NewF32x2(2147483648, 3), NewU32x2(1<<31, 3).ToF())
	assert.Equal(t, NewF32x8(-1, 0, 1, 2, -3, 4, 5, -6), NewI32x8(-1, 0, 1, 2, -3, 4, 5, -6).ToF())
	assert.Equal(t, NewF64x2(1<<53, 42), NewU64x2(1<<53, 42).ToF())
}

func TestIntFloatRoundTrip(t *testing.T) {
	v := NewI32x8(0, 1, -1, 1<<24, -(1 << 24), 12345, -54321, 100)
	if diff := cmp.Diff(v, v.ToF().ToI()); diff != "" {
		t.Errorf("I32x8 -> F32x8 -> I32x8 (-want +got):\n%s", diff)
	}

	u := NewU64x4(0, 1, 1<<52, 999)
	if diff := cmp.Diff(u, u.ToF().ToU()); diff != "" {
		t.Errorf("U64x4 -> F64x4 -> U64x4 (-want +got):\n%s", diff)
	}
}

func TestSignReinterpretation(t *testing.T) {
	assert.Equal(t, SplatI32x4(-1), SplatU32x4(math.MaxUint32).ToI())
	assert.Equal(t, NewU16x8(0xFFFF, 0x8000, 0, 1, 2, 3, 4, 5),
		NewI16x8(-1, math.MinInt16, 0, 1, 2, 3, 4, 5).ToU())
	assert.Equal(t, SplatI8x32(-128), SplatU8x32(0x80).ToI())
	assert.Equal(t, SplatU64x2(1<<63), SplatI64x2(math.MinInt64).ToU())

	// Reinterpreting twice is the identity.
	v := NewI8x16(-128, -1, 0, 1, 127, 5, -5, 9, 10, 11, 12, 13, 14, 15, 16, 17)
	assert.Equal(t, v, v.ToU().ToI())
}

func TestBoolRawCast(t *testing.T) {
	a := NewF32x4(1, 5, 3, 8)
	b := NewF32x4(2, 4, 3, 7)
	assert.Equal(t, NewU32x4(0, math.MaxUint32, 0, math.MaxUint32), a.Gt(b).ToU())
	assert.Equal(t, NewI32x4(0, -1, 0, -1), a.Gt(b).ToI())

	// Lane bits are carried over unchanged; nothing is canonicalized.
	assert.Equal(t, NewI32x4(1, 0, 7, -1), NewBool32x4(1, 0, 7, -1).ToI())
	assert.Equal(t, NewU8x16(0xFF, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x80),
		NewBool8x16(-1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -128).ToU())
	assert.Equal(t, SplatU64x4(math.MaxUint64), SplatBool64x4(-1).ToU())
}

func TestWidthConversions(t *testing.T) {
	// Narrowing keeps the low bits.
	assert.Equal(t, NewI32x2(5, -1), NewI64x2(1<<40+5, -1).ToI32())
	assert.Equal(t, NewU32x4(9, 0, math.MaxUint32, 1), NewU64x4(1<<32|9, 1<<32, math.MaxUint64, 1).ToU32())

	// Widening sign-extends signed lanes and zero-extends unsigned lanes.
	assert.Equal(t, NewI64x2(-1, 7), NewI32x2(-1, 7).ToI64())
	assert.Equal(t, NewU64x4(math.MaxUint32, 0, 1, 2), NewU32x4(math.MaxUint32, 0, 1, 2).ToU64())

	// float32 -> float64 is exact; float64 -> float32 rounds.
	f := NewF32x4(0.1, -2.5, 1e30, 0)
	wide := f.ToF64()
	for i := range f {
		if wide[i] != float64(f[i]) {
			t.Errorf("ToF64: lane %d: got %v, want %v", i, wide[i], float64(f[i]))
		}
	}
	assert.Equal(t, f, wide.ToF32())
	assert.Equal(t, NewF32x2(float32(0.1), 1.5), NewF64x2(0.1, 1.5).ToF32())

	assert.Equal(t, SplatI64x4(-3), SplatI32x4(-3).ToI64())
	assert.Equal(t, SplatF64x4(0.25), SplatF32x4(0.25).ToF64().ToF32().ToF64())
}
