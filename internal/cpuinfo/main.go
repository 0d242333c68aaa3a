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

// Package main provides a diagnostic tool that prints the in-memory layout of
// the hwy vector types and the vector features Go detects on this host.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/go-highway/ssimd/hwy"
)

// layout describes the memory footprint of one vector type.
type layout struct {
	name  string
	lanes int
	size  uintptr // total bytes
	align uintptr
}

func layouts() []layout {
	row := func(name string, lanes int, size, align uintptr) layout {
		return layout{name: name, lanes: lanes, size: size, align: align}
	}
	return []layout{
		row("U32x2", hwy.U32x2{}.NumLanes(), unsafe.Sizeof(hwy.U32x2{}), unsafe.Alignof(hwy.U32x2{})),
		row("F32x4", hwy.F32x4{}.NumLanes(), unsafe.Sizeof(hwy.F32x4{}), unsafe.Alignof(hwy.F32x4{})),
		row("I16x8", hwy.I16x8{}.NumLanes(), unsafe.Sizeof(hwy.I16x8{}), unsafe.Alignof(hwy.I16x8{})),
		row("U8x16", hwy.U8x16{}.NumLanes(), unsafe.Sizeof(hwy.U8x16{}), unsafe.Alignof(hwy.U8x16{})),
		row("F64x2", hwy.F64x2{}.NumLanes(), unsafe.Sizeof(hwy.F64x2{}), unsafe.Alignof(hwy.F64x2{})),
		row("F64x4", hwy.F64x4{}.NumLanes(), unsafe.Sizeof(hwy.F64x4{}), unsafe.Alignof(hwy.F64x4{})),
		row("F32x8", hwy.F32x8{}.NumLanes(), unsafe.Sizeof(hwy.F32x8{}), unsafe.Alignof(hwy.F32x8{})),
		row("U16x16", hwy.U16x16{}.NumLanes(), unsafe.Sizeof(hwy.U16x16{}), unsafe.Alignof(hwy.U16x16{})),
		row("I8x32", hwy.I8x32{}.NumLanes(), unsafe.Sizeof(hwy.I8x32{}), unsafe.Alignof(hwy.I8x32{})),
		row("Bool32x4", hwy.Bool32x4{}.NumLanes(), unsafe.Sizeof(hwy.Bool32x4{}), unsafe.Alignof(hwy.Bool32x4{})),
		row("Bool8x32", hwy.Bool8x32{}.NumLanes(), unsafe.Sizeof(hwy.Bool8x32{}), unsafe.Alignof(hwy.Bool8x32{})),
	}
}

func printLayouts(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLANES\tBYTES\tALIGN")
	for _, l := range layouts() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", l.name, l.lanes, l.size, l.align)
	}
	tw.Flush()
}

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Println("=== hwy vector layout ===")
	printLayouts(os.Stdout)
	fmt.Println()

	fmt.Printf("Host vector level: %s\n", hwy.Host())
	fmt.Printf("Host vector width: %d bytes\n", hwy.HostWidth())
	fmt.Printf("F32 lanes per register: %d\n", hwy.MaxLanes[float32]())
	fmt.Printf("HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
}
