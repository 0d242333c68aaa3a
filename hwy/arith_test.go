package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestAxpyLanes(t *testing.T) {
	a := SplatF32x4(2)
	x := NewF32x4(1, 3, 5, 7)
	y := NewF32x4(2, 4, 6, 8)

	got := a.Mul(x).Add(y)
	want := NewF32x4(4, 10, 16, 22)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("a*x+y (-want +got):\n%s", diff)
	}
}

func TestArithLanewise(t *testing.T) {
	a := NewI32x8(1, 2, 3, 4, 5, 6, 7, 8)
	b := NewI32x8(8, 7, 6, 5, 4, 3, 2, 1)

	for i := range 8 {
		if got, want := a.Add(b).Extract(i), a[i]+b[i]; got != want {
			t.Errorf("Add: lane %d: got %d, want %d", i, got, want)
		}
		if got, want := a.Sub(b).Extract(i), a[i]-b[i]; got != want {
			t.Errorf("Sub: lane %d: got %d, want %d", i, got, want)
		}
		if got, want := a.Mul(b).Extract(i), a[i]*b[i]; got != want {
			t.Errorf("Mul: lane %d: got %d, want %d", i, got, want)
		}
	}

	f := NewF64x4(1, -2, 0.5, 9)
	g := NewF64x4(4, 4, -0.25, 3)
	assert.Equal(t, NewF64x4(5, 2, 0.25, 12), f.Add(g))
	assert.Equal(t, NewF64x4(-3, -6, 0.75, 6), f.Sub(g))
	assert.Equal(t, NewF64x4(4, -8, -0.125, 27), f.Mul(g))
	assert.Equal(t, NewF64x4(0.25, -0.5, -2, 3), f.Div(g))
}

func TestIntegerWrap(t *testing.T) {
	assert.Equal(t, SplatU8x32(0), SplatU8x32(255).Add(SplatU8x32(1)))
	assert.Equal(t, SplatU8x16(255), SplatU8x16(0).Sub(SplatU8x16(1)))
	assert.Equal(t, SplatI16x8(math.MinInt16), SplatI16x8(math.MaxInt16).Add(SplatI16x8(1)))
	assert.Equal(t, SplatI32x4(0), SplatI32x4(1<<30).Mul(SplatI32x4(4)))
	assert.Equal(t, SplatU64x2(0), SplatU64x2(1<<63).Mul(SplatU64x2(2)))
}

func TestIntegerDiv(t *testing.T) {
	got := NewI32x4(7, -7, 7, -7).Div(NewI32x4(2, 2, -2, -2))
	assert.Equal(t, NewI32x4(3, -3, -3, 3), got, "division truncates toward zero")

	assert.Equal(t, NewU16x8(5, 0, 1, 65535, 7, 3, 2, 1),
		NewU16x8(10, 3, 9, 65535, 49, 9, 8, 1).Div(NewU16x8(2, 4, 9, 1, 7, 3, 4, 1)))

	// The most negative value divided by -1 wraps to itself.
	assert.Equal(t, SplatI8x16(math.MinInt8), SplatI8x16(math.MinInt8).Div(SplatI8x16(-1)))

	assert.PanicsWithError(t, "runtime error: integer divide by zero", func() {
		SplatI32x4(1).Div(NewI32x4(1, 0, 1, 1))
	})
	assert.PanicsWithError(t, "runtime error: integer divide by zero", func() {
		SplatU8x32(1).Div(U8x32{})
	})
}

func TestFloatDivIEEE(t *testing.T) {
	got := NewF64x2(1, -1).Div(SplatF64x2(0))
	assert.True(t, math.IsInf(got[0], 1), "1/0: got %v", got[0])
	assert.True(t, math.IsInf(got[1], -1), "-1/0: got %v", got[1])

	nan := SplatF32x4(0).Div(SplatF32x4(0))
	for i, x := range nan {
		if !math.IsNaN(float64(x)) {
			t.Errorf("0/0: lane %d: got %v, want NaN", i, x)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := NewI16x8(1, -5, 3, 7, 0, 0, -1, 100)
	b := NewI16x8(2, -6, 3, 6, 0, 1, -1, -100)
	assert.Equal(t, NewI16x8(1, -6, 3, 6, 0, 0, -1, -100), a.Min(b))
	assert.Equal(t, NewI16x8(2, -5, 3, 7, 0, 1, -1, 100), a.Max(b))

	u := NewU32x4(0, math.MaxUint32, 5, 5)
	w := NewU32x4(1, 0, 5, 4)
	assert.Equal(t, NewU32x4(0, 0, 5, 4), u.Min(w))
	assert.Equal(t, NewU32x4(1, math.MaxUint32, 5, 5), u.Max(w))
}

func TestMinMaxTiesGoRight(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())

	a := NewF32x4(0, 1, nan, 2)
	b := NewF32x4(negZero, 1, 1, nan)

	lo := a.Min(b)
	hi := a.Max(b)

	// +0 and -0 compare equal, so both pick the right-hand -0.
	assert.True(t, math.Signbit(float64(lo[0])), "Min(+0, -0): got %v, want -0", lo[0])
	assert.True(t, math.Signbit(float64(hi[0])), "Max(+0, -0): got %v, want -0", hi[0])

	// Any comparison with NaN is false, so the right-hand lane wins.
	want := NewF32x4(negZero, 1, 1, nan)
	opt := cmpopts.EquateNaNs()
	if diff := cmp.Diff(want, lo, opt); diff != "" {
		t.Errorf("Min (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, hi, opt); diff != "" {
		t.Errorf("Max (-want +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	a := NewI32x4(1, 5, 3, 7)
	b := NewI32x4(2, 5, 1, 7)

	tests := []struct {
		name string
		got  Bool32x4
		want Bool32x4
	}{
		{"Eq", a.Eq(b), NewBool32x4(0, -1, 0, -1)},
		{"Ne", a.Ne(b), NewBool32x4(-1, 0, -1, 0)},
		{"Lt", a.Lt(b), NewBool32x4(-1, 0, 0, 0)},
		{"Le", a.Le(b), NewBool32x4(-1, -1, 0, -1)},
		{"Gt", a.Gt(b), NewBool32x4(0, 0, -1, 0)},
		{"Ge", a.Ge(b), NewBool32x4(0, -1, -1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	assert.True(t, a.Lt(b).Any())
	assert.False(t, a.Lt(a).Any(), "no lane is less than itself")
	assert.True(t, a.Eq(a).All(), "every lane equals itself")
}

func TestCompareUnsignedOrder(t *testing.T) {
	// 0xFF is 255, not -1.
	a := SplatU8x32(0xFF)
	b := SplatU8x32(1)
	assert.Equal(t, SplatBool8x32(-1), a.Gt(b))
	assert.Equal(t, SplatBool8x32(-1), SplatI8x32(-1).Lt(SplatI8x32(1)))
}

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()
	v := NewF64x4(1, nan, 3, nan)

	eq := v.Eq(v)
	assert.Equal(t, NewBool64x4(-1, 0, -1, 0), eq)
	assert.False(t, eq.All())
	assert.Equal(t, 2, eq.CountTrue())
	assert.Equal(t, NewBool64x4(0, -1, 0, -1), v.Ne(v))
	assert.Equal(t, NewBool64x4(-1, 0, -1, 0), v.Le(v))
}

func TestReduceSum(t *testing.T) {
	assert.Equal(t, float32(10), NewF32x4(1, 2, 3, 4).ReduceSum())
	assert.Equal(t, float64(-1.5), NewF64x2(0.5, -2).ReduceSum())
	assert.Equal(t, int16(-16), SplatI16x16(-1).ReduceSum())
	// 32 * 10 wraps modulo 256.
	assert.Equal(t, uint8(64), SplatU8x32(10).ReduceSum())
	assert.Equal(t, uint64(6), NewU64x4(1, 2, 3, 0).ReduceSum())
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, NewF64x2(2, math.Sqrt2), NewF64x2(4, 2).Sqrt())
	assert.Equal(t, NewF32x4(0, 1, 3, 0.5), NewF32x4(0, 1, 9, 0.25).Sqrt())

	neg := SplatF32x2(-1).Sqrt()
	assert.True(t, math.IsNaN(float64(neg[0])), "sqrt(-1): got %v", neg[0])
}

func TestApproxReciprocals(t *testing.T) {
	r := NewF32x4(4, 16, 0.25, 1).ApproxRSqrt()
	assert.InDeltaSlice(t, []float32{0.5, 0.25, 2, 1}, r[:], 1e-3)

	rcp := NewF32x2(2, 0).ApproxReciprocal()
	assert.InDelta(t, 0.5, rcp[0], 1e-3)
	assert.True(t, math.IsInf(float64(rcp[1]), 1), "1/0: got %v", rcp[1])

	r64 := NewF64x4(1, 4, 100, 0.01).ApproxRSqrt()
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.1, 10}, r64[:], 1e-9)
}
