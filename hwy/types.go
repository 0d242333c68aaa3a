// Package hwy provides fixed-width, lane-wise vector types that emulate SIMD
// semantics in portable Go.
//
// Every type is a small array of 2, 4, 8, 16 or 32 lanes of one scalar kind:
// unsigned integers (U32x4, U8x32, ...), signed integers (I32x4, I16x16, ...),
// floats (F32x4, F64x2, ...) or booleans (Bool32x4, Bool8x16, ...). The lanes
// are stored in index order with no padding, so a vector has exactly the
// memory image of the slice it was loaded from. Vectors are plain values:
// every operation returns a new vector and nothing is shared or allocated.
//
// Basic usage:
//
//	import "github.com/go-highway/ssimd/hwy"
//
//	// Load four lanes from each slice
//	a := hwy.LoadF32x4(x, i)
//	b := hwy.LoadF32x4(y, i)
//
//	// Lane-wise arithmetic
//	sum := hwy.SplatF32x4(2).Mul(a).Add(b)
//
//	// Store the result back
//	sum.Store(z, i)
//
// Comparisons return the boolean sibling of the same shape (F32x4.Lt returns
// Bool32x4) with every lane either 0 (false) or -1 (all bits set, true), which
// makes them usable as bit masks for Select.
//
// The per-type method sets are generated by cmd/lanegen from lanes.yaml.
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
// Boolean lanes are stored as signed integers of their sibling's width.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}
