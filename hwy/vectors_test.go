package hwy

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type laneVector[E comparable] interface {
	NumLanes() int
	Extract(idx int) E
}

func checkSplat[V laneVector[E], E comparable](t *testing.T, name string, v V, x E, lanes int) {
	t.Helper()
	if v.NumLanes() != lanes {
		t.Errorf("%s: NumLanes: got %d, want %d", name, v.NumLanes(), lanes)
	}
	for i := 0; i < v.NumLanes(); i++ {
		if got := v.Extract(i); got != x {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got, x)
		}
	}
}

func TestSplatExtract(t *testing.T) {
	checkSplat(t, "U32x2", SplatU32x2(7), uint32(7), 2)
	checkSplat(t, "I32x2", SplatI32x2(-7), int32(-7), 2)
	checkSplat(t, "F32x2", SplatF32x2(1.5), float32(1.5), 2)
	checkSplat(t, "Bool32x2", SplatBool32x2(-1), int32(-1), 2)

	checkSplat(t, "U32x4", SplatU32x4(7), uint32(7), 4)
	checkSplat(t, "I32x4", SplatI32x4(-7), int32(-7), 4)
	checkSplat(t, "F32x4", SplatF32x4(1.5), float32(1.5), 4)
	checkSplat(t, "Bool32x4", SplatBool32x4(-1), int32(-1), 4)

	checkSplat(t, "U16x8", SplatU16x8(0xBEEF), uint16(0xBEEF), 8)
	checkSplat(t, "I16x8", SplatI16x8(-300), int16(-300), 8)
	checkSplat(t, "Bool16x8", SplatBool16x8(1), int16(1), 8)

	checkSplat(t, "U8x16", SplatU8x16(200), uint8(200), 16)
	checkSplat(t, "I8x16", SplatI8x16(-100), int8(-100), 16)
	checkSplat(t, "Bool8x16", SplatBool8x16(-1), int8(-1), 16)

	checkSplat(t, "U64x2", SplatU64x2(1<<63), uint64(1<<63), 2)
	checkSplat(t, "I64x2", SplatI64x2(-1<<40), int64(-1<<40), 2)
	checkSplat(t, "F64x2", SplatF64x2(-2.25), float64(-2.25), 2)
	checkSplat(t, "Bool64x2", SplatBool64x2(-1), int64(-1), 2)

	checkSplat(t, "U64x4", SplatU64x4(3), uint64(3), 4)
	checkSplat(t, "I64x4", SplatI64x4(-3), int64(-3), 4)
	checkSplat(t, "F64x4", SplatF64x4(0.125), float64(0.125), 4)
	checkSplat(t, "Bool64x4", SplatBool64x4(0), int64(0), 4)

	checkSplat(t, "U32x8", SplatU32x8(9), uint32(9), 8)
	checkSplat(t, "I32x8", SplatI32x8(-9), int32(-9), 8)
	checkSplat(t, "F32x8", SplatF32x8(9.5), float32(9.5), 8)
	checkSplat(t, "Bool32x8", SplatBool32x8(-1), int32(-1), 8)

	checkSplat(t, "U16x16", SplatU16x16(65535), uint16(65535), 16)
	checkSplat(t, "I16x16", SplatI16x16(-32768), int16(-32768), 16)
	checkSplat(t, "Bool16x16", SplatBool16x16(-1), int16(-1), 16)

	checkSplat(t, "U8x32", SplatU8x32(255), uint8(255), 32)
	checkSplat(t, "I8x32", SplatI8x32(-128), int8(-128), 32)
	checkSplat(t, "Bool8x32", SplatBool8x32(-1), int8(-1), 32)
}

func TestPackedLayout(t *testing.T) {
	tests := []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"U32x2", unsafe.Sizeof(U32x2{}), 8},
		{"F32x4", unsafe.Sizeof(F32x4{}), 16},
		{"Bool32x4", unsafe.Sizeof(Bool32x4{}), 16},
		{"I16x8", unsafe.Sizeof(I16x8{}), 16},
		{"Bool8x16", unsafe.Sizeof(Bool8x16{}), 16},
		{"F64x2", unsafe.Sizeof(F64x2{}), 16},
		{"I64x4", unsafe.Sizeof(I64x4{}), 32},
		{"F32x8", unsafe.Sizeof(F32x8{}), 32},
		{"U16x16", unsafe.Sizeof(U16x16{}), 32},
		{"U8x32", unsafe.Sizeof(U8x32{}), 32},
		{"Bool8x32", unsafe.Sizeof(Bool8x32{}), 32},
	}
	for _, tt := range tests {
		if tt.size != tt.want {
			t.Errorf("%s: size: got %d, want %d", tt.name, tt.size, tt.want)
		}
	}

	// Lane i lives at byte offset i*sizeof(lane).
	v := NewI16x8(0, 1, 2, 3, 4, 5, 6, 7)
	base := uintptr(unsafe.Pointer(&v))
	for i := range v {
		if off := uintptr(unsafe.Pointer(&v[i])) - base; off != uintptr(i)*2 {
			t.Errorf("I16x8: lane %d: offset %d, want %d", i, off, i*2)
		}
	}
}

func TestNew(t *testing.T) {
	v := NewF32x4(1, 2, 3, 4)
	for i := range 4 {
		if got, want := v.Extract(i), float32(i+1); got != want {
			t.Errorf("NewF32x4: lane %d: got %v, want %v", i, got, want)
		}
	}

	u := NewU8x32(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31)
	for i := range 32 {
		if got := u.Extract(i); got != uint8(i) {
			t.Errorf("NewU8x32: lane %d: got %v, want %v", i, got, i)
		}
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]float32, 11)
	for i := range src {
		src[i] = float32(i) + 0.5
	}
	for idx := 0; idx+4 <= len(src); idx++ {
		dst := make([]float32, len(src))
		LoadF32x4(src, idx).Store(dst, idx)

		want := make([]float32, len(src))
		copy(want[idx:idx+4], src[idx:idx+4])
		if diff := cmp.Diff(want, dst); diff != "" {
			t.Errorf("F32x4 round trip at %d (-want +got):\n%s", idx, diff)
		}
	}

	buf := make([]uint8, 40)
	for i := range buf {
		buf[i] = uint8(3 * i)
	}
	out := make([]uint8, 40)
	LoadU8x32(buf, 8).Store(out, 8)
	if diff := cmp.Diff(buf[8:40], out[8:40]); diff != "" {
		t.Errorf("U8x32 round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(make([]uint8, 8), out[:8]); diff != "" {
		t.Errorf("U8x32 store touched lanes before idx:\n%s", diff)
	}

	words := []int64{10, -20, 30, -40, 50}
	v := LoadI64x4(words, 1)
	assert.Equal(t, NewI64x4(-20, 30, -40, 50), v)
}

func TestLoadOutOfRange(t *testing.T) {
	assert.PanicsWithError(t,
		"hwy: LoadF32x4: span [2:6] out of range for buffer of length 5",
		func() { LoadF32x4(make([]float32, 5), 2) })
	assert.PanicsWithError(t,
		"hwy: LoadI8x16: span [-1:15] out of range for buffer of length 32",
		func() { LoadI8x16(make([]int8, 32), -1) })
	assert.PanicsWithError(t,
		"hwy: LoadBool64x4: span [0:4] out of range for buffer of length 3",
		func() { LoadBool64x4(make([]int64, 3), 0) })

	// Exactly fitting spans are fine.
	assert.NotPanics(t, func() { LoadU16x16(make([]uint16, 16), 0) })
	assert.NotPanics(t, func() { LoadF64x2(make([]float64, 5), 3) })
}

func TestStoreOutOfRange(t *testing.T) {
	dst := []float32{9, 9, 9, 9, 9}
	assert.PanicsWithError(t,
		"hwy: F32x4.Store: span [2:6] out of range for buffer of length 5",
		func() { SplatF32x4(1).Store(dst, 2) })
	assert.Equal(t, []float32{9, 9, 9, 9, 9}, dst, "failed Store must not write")

	assert.Panics(t, func() { SplatU32x8(1).Store(make([]uint32, 16), -3) })
}

func TestExtractOutOfRange(t *testing.T) {
	assert.PanicsWithError(t,
		"hwy: U16x8.Extract: lane index 8 out of range [0:8]",
		func() { SplatU16x8(1).Extract(8) })
	assert.PanicsWithError(t,
		"hwy: F64x2.Extract: lane index -1 out of range [0:2]",
		func() { SplatF64x2(1).Extract(-1) })
	assert.PanicsWithError(t,
		"hwy: Bool8x32.Extract: lane index 32 out of range [0:32]",
		func() { SplatBool8x32(-1).Extract(32) })
}

func TestReplace(t *testing.T) {
	v := NewI32x4(1, 2, 3, 4)
	r := v.Replace(2, 30)
	assert.Equal(t, NewI32x4(1, 2, 30, 4), r)
	assert.Equal(t, NewI32x4(1, 2, 3, 4), v, "Replace must not modify its receiver")

	defer func() {
		rec := recover()
		require.NotNil(t, rec, "Replace(4) did not panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)

		var le *LaneError
		require.True(t, errors.As(err, &le))
		assert.Equal(t, "I32x4.Replace", le.Op)
		assert.Equal(t, 4, le.Index)
		assert.Equal(t, 4, le.Lanes)
		assert.Equal(t, -1, le.Len)
	}()
	v.Replace(4, 0)
}

func TestValueSemantics(t *testing.T) {
	a := SplatU64x2(5)
	b := a
	b[0] = 6
	if a.Extract(0) != 5 {
		t.Errorf("copy aliased the original: got %v, want 5", a.Extract(0))
	}
}
