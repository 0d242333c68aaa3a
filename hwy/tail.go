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

// ProcessWithTail is a helper for processing arrays with fixed-width vectors
// when the size is not a multiple of the lane count.
//
// It calls:
//   - fullFn(offset) for each full block of lanes (offset is the starting index)
//   - tailFn(offset, count) once for the remainder, if any
//
// Loads and stores never handle partial vectors, so the tail is always the
// caller's job. Example:
//
//	hwy.ProcessWithTail(len(x), 4,
//	    func(offset int) {
//	        v := hwy.LoadF32x4(x, offset)
//	        v.Add(v).Store(out, offset)
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = x[i] + x[i]
//	        }
//	    },
//	)
//
// It panics if lanes is not positive.
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		panic(&LaneError{Op: "ProcessWithTail", Index: 0, Lanes: lanes, Len: size})
	}

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 && tailFn != nil {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of lanes.
// This is useful for allocating padded buffers so every load is a full vector.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}
