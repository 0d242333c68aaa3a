package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		lanes      int
		wantFull   []int
		wantOffset int
		wantCount  int
	}{
		{"empty", 0, 4, nil, -1, 0},
		{"shorter than a vector", 3, 4, nil, 0, 3},
		{"exact", 8, 4, []int{0, 4}, -1, 0},
		{"with tail", 10, 4, []int{0, 4}, 8, 2},
		{"one lane", 3, 1, []int{0, 1, 2}, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var full []int
			tailOffset, tailCount, tailCalls := -1, 0, 0
			ProcessWithTail(tt.size, tt.lanes,
				func(offset int) { full = append(full, offset) },
				func(offset, count int) {
					tailOffset, tailCount = offset, count
					tailCalls++
				})

			assert.Equal(t, tt.wantFull, full)
			assert.Equal(t, tt.wantOffset, tailOffset)
			assert.Equal(t, tt.wantCount, tailCount)
			if tt.wantCount > 0 {
				assert.Equal(t, 1, tailCalls)
			} else {
				assert.Zero(t, tailCalls, "tail called with nothing left")
			}
		})
	}
}

func TestProcessWithTailVectors(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5, 6, 7}
	out := make([]float32, len(x))
	two := SplatF32x4(2)

	ProcessWithTail(len(x), 4,
		func(offset int) {
			LoadF32x4(x, offset).Mul(two).Store(out, offset)
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				out[i] = x[i] * 2
			}
		})

	assert.Equal(t, []float32{2, 4, 6, 8, 10, 12, 14}, out)
}

func TestProcessWithTailNilTail(t *testing.T) {
	calls := 0
	assert.NotPanics(t, func() {
		ProcessWithTail(5, 2, func(int) { calls++ }, nil)
	})
	assert.Equal(t, 2, calls)
}

func TestProcessWithTailBadLanes(t *testing.T) {
	assert.Panics(t, func() { ProcessWithTail(4, 0, func(int) {}, nil) })
	assert.Panics(t, func() { ProcessWithTail(4, -2, func(int) {}, nil) })
}

func TestAlignedSize(t *testing.T) {
	tests := []struct{ size, lanes, want int }{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{10, 4, 12},
		{33, 32, 64},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := AlignedSize(tt.size, tt.lanes); got != tt.want {
			t.Errorf("AlignedSize(%d, %d): got %d, want %d", tt.size, tt.lanes, got, tt.want)
		}
		if got := IsAligned(tt.size, tt.lanes); got != (tt.size == tt.want) {
			t.Errorf("IsAligned(%d, %d): got %v", tt.size, tt.lanes, got)
		}
	}
}
