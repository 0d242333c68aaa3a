// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"fmt"
	"math"
)

// This file holds the lane helpers shared by the generated method sets in
// vectors.gen.go, arith.gen.go, bitops.gen.go and convert.gen.go.

// LaneError is the panic value raised when a lane index or a buffer span
// falls outside a vector's bounds.
//
// Out-of-range access is a programming error: the operation is aborted
// before anything is read or written. Callers that want to recover can
// type-assert the recovered value to *LaneError.
type LaneError struct {
	// Op names the failing operation, e.g. "F32x4.Extract" or "LoadU8x32".
	Op string

	// Index is the lane index or the starting buffer offset.
	Index int

	// Lanes is the lane count of the vector type.
	Lanes int

	// Len is the length of the buffer for Load/Store, or -1 for lane access.
	Len int
}

func (e *LaneError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("hwy: %s: lane index %d out of range [0:%d]", e.Op, e.Index, e.Lanes)
	}
	return fmt.Sprintf("hwy: %s: span [%d:%d] out of range for buffer of length %d",
		e.Op, e.Index, e.Index+e.Lanes, e.Len)
}

// checkLane panics unless 0 <= idx < lanes.
func checkLane(op string, idx, lanes int) {
	if idx < 0 || idx >= lanes {
		panic(&LaneError{Op: op, Index: idx, Lanes: lanes, Len: -1})
	}
}

// checkSpan panics unless [idx, idx+lanes) lies within a buffer of length n.
func checkSpan(op string, idx, lanes, n int) {
	if idx < 0 || idx > n-lanes {
		panic(&LaneError{Op: op, Index: idx, Lanes: lanes, Len: n})
	}
}

// boolLane returns the canonical boolean lane: -1 (all bits set) for true,
// 0 for false.
func boolLane[B SignedInts](c bool) B {
	if c {
		return -1
	}
	return 0
}

// blend returns the bits of a where m is set and the bits of b elsewhere.
func blend[T Integers](m, a, b T) T {
	return (m & a) | (^m & b)
}

// blendF32 blends two float32 lanes on their IEEE bit patterns.
func blendF32(m uint32, a, b float32) float32 {
	return math.Float32frombits(blend(m, math.Float32bits(a), math.Float32bits(b)))
}

// blendF64 blends two float64 lanes on their IEEE bit patterns.
func blendF64(m uint64, a, b float64) float64 {
	return math.Float64frombits(blend(m, math.Float64bits(a), math.Float64bits(b)))
}

// sqrtF32 returns the correctly rounded float32 square root.
func sqrtF32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sqrtF64(x float64) float64 {
	return math.Sqrt(x)
}
