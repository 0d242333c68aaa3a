package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBitLogic(t *testing.T) {
	a := NewU16x8(0xF0F0, 0x00FF, 0xFFFF, 0, 1, 2, 4, 8)
	b := NewU16x8(0xFF00, 0x0F0F, 0x1234, 0, 3, 3, 3, 3)

	assert.Equal(t, NewU16x8(0xF000, 0x000F, 0x1234, 0, 1, 2, 0, 0), a.And(b))
	assert.Equal(t, NewU16x8(0xFFF0, 0x0FFF, 0xFFFF, 0, 3, 3, 7, 11), a.Or(b))
	assert.Equal(t, NewU16x8(0x0FF0, 0x0FF0, 0xEDCB, 0, 2, 1, 7, 11), a.Xor(b))
	assert.Equal(t, NewU16x8(0x0F0F, 0xFF00, 0, 0xFFFF, 0xFFFE, 0xFFFD, 0xFFFB, 0xFFF7), a.Not())

	assert.Equal(t, SplatI8x16(-1), SplatI8x16(0).Not())
	assert.Equal(t, SplatI64x4(0), SplatI64x4(-1).Xor(SplatI64x4(-1)))
}

func TestShifts(t *testing.T) {
	tests := []struct {
		name      string
		got, want any
	}{
		{"U32 Shl 4", SplatU32x4(0x0F).Shl(4), SplatU32x4(0xF0)},
		{"U32 Shr 4", SplatU32x4(0xF0).Shr(4), SplatU32x4(0x0F)},
		{"U8 Shl drops high bits", SplatU8x32(3).Shl(7), SplatU8x32(0x80)},
		{"I64 Shl into sign bit", SplatI64x2(1).Shl(63), SplatI64x2(math.MinInt64)},
		{"I32 Shr is arithmetic", NewI32x4(-8, 8, -1, 1).Shr(1), NewI32x4(-4, 4, -1, 0)},
		{"U16 Shr is logical", SplatU16x8(0x8000).Shr(15), SplatU16x8(1)},
		{"I16 Shr sign fills", SplatI16x16(math.MinInt16).Shr(15), SplatI16x16(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftCountAtLeastWidth(t *testing.T) {
	for _, n := range []uint{32, 33, 100} {
		assert.Equal(t, SplatU32x4(0), SplatU32x4(math.MaxUint32).Shl(n), "U32 Shl %d", n)
		assert.Equal(t, SplatU32x4(0), SplatU32x4(math.MaxUint32).Shr(n), "U32 Shr %d", n)
		assert.Equal(t, SplatI32x8(0), SplatI32x8(-1).Shl(n), "I32 Shl %d", n)
		assert.Equal(t, SplatI32x8(-1), SplatI32x8(-8).Shr(n), "I32 Shr %d of negative", n)
		assert.Equal(t, SplatI32x8(0), SplatI32x8(8).Shr(n), "I32 Shr %d of positive", n)
	}
	assert.Equal(t, SplatU64x4(0), SplatU64x4(1).Shl(64))
	assert.Equal(t, SplatU8x16(0), SplatU8x16(0xFF).Shr(8))
}

func TestSelectWithComparisonMask(t *testing.T) {
	a := NewF32x4(1, 5, 3, 8)
	b := NewF32x4(2, 4, 3, 7)
	mask := a.Gt(b)
	assert.Equal(t, NewBool32x4(0, -1, 0, -1), mask)

	// Lanes where a > b take a, the others take b: a lane-wise max.
	assert.Equal(t, NewF32x4(2, 5, 3, 8), mask.SelectF(a, b))
	assert.Equal(t, a.Max(b), mask.SelectF(a, b))

	ia := NewI32x4(-1, 10, 0, 7)
	ib := NewI32x4(3, 2, 0, 9)
	im := ia.Lt(ib)
	assert.Equal(t, NewI32x4(-1, 2, 0, 7), im.SelectI(ia, ib))
	assert.Equal(t, NewI32x4(-1, 2, 0, 7), im.ToI().Select(ia, ib))

	ua := NewU64x2(1, 2)
	ub := NewU64x2(2, 1)
	um := ua.Ge(ub)
	assert.Equal(t, NewU64x2(2, 2), um.SelectU(ua, ub))
	assert.Equal(t, NewU64x2(2, 2), um.ToU().Select(ua, ub))
}

func TestSelectAllOrNothing(t *testing.T) {
	then := NewF64x4(1, 2, 3, 4)
	els := NewF64x4(-1, -2, -3, -4)
	assert.Equal(t, then, SplatBool64x4(-1).SelectF(then, els))
	assert.Equal(t, els, SplatBool64x4(0).SelectF(then, els))

	// NaN payloads survive a float blend untouched.
	nan := math.Float32frombits(0x7FC00123)
	got := NewBool32x2(-1, 0).SelectF(NewF32x2(nan, 1), NewF32x2(2, nan))
	assert.Equal(t, uint32(0x7FC00123), math.Float32bits(got[0]))
	assert.Equal(t, uint32(0x7FC00123), math.Float32bits(got[1]))
}

func TestSelectIsBitwiseBlend(t *testing.T) {
	// (mask & then) | (^mask & else), bit by bit.
	mask := SplatU8x16(0x0F)
	got := mask.Select(SplatU8x16(0xAB), SplatU8x16(0xCD))
	assert.Equal(t, SplatU8x16(0xCB), got)

	// A non-canonical true lane only passes the bits it has set.
	blended := NewBool32x2(1, 0).SelectI(SplatI32x2(-1), SplatI32x2(0))
	assert.Equal(t, NewI32x2(1, 0), blended)

	// Bool masks blend other masks too.
	m := NewBool16x8(-1, 0, -1, 0, -1, 0, -1, 0)
	x := SplatBool16x8(-1)
	y := SplatBool16x8(0)
	assert.Equal(t, m, m.Select(x, y))
}

func TestBoolLogic(t *testing.T) {
	a := NewBool32x4(-1, -1, 0, 0)
	b := NewBool32x4(-1, 0, -1, 0)
	assert.Equal(t, NewBool32x4(-1, 0, 0, 0), a.And(b))
	assert.Equal(t, NewBool32x4(-1, -1, -1, 0), a.Or(b))
	assert.Equal(t, NewBool32x4(0, -1, -1, 0), a.Xor(b))
	assert.Equal(t, NewBool32x4(0, 0, -1, -1), a.Not())

	// Not is bitwise: a non-canonical 1 becomes -2, which is still nonzero.
	assert.Equal(t, NewBool8x16(-2, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
		NewBool8x16(1, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1).Not())
}

func TestBoolReductions(t *testing.T) {
	tests := []struct {
		name  string
		v     Bool16x8
		all   bool
		any   bool
		count int
	}{
		{"none", Bool16x8{}, false, false, 0},
		{"all", SplatBool16x8(-1), true, true, 8},
		{"mixed", NewBool16x8(0, 2, 0, -5, 0, 0, 0, 0), false, true, 2},
		{"non-canonical all", SplatBool16x8(1), true, true, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.all, tt.v.All(), "All")
			assert.Equal(t, tt.any, tt.v.Any(), "Any")
			assert.Equal(t, tt.count, tt.v.CountTrue(), "CountTrue")
		})
	}

	wide := SplatBool8x32(0).Replace(31, -1)
	assert.True(t, wide.Any())
	assert.Equal(t, 1, wide.CountTrue())
}
