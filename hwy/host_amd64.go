//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detectHost() (HostLevel, int) {
	switch {
	case cpu.X86.HasAVX512F:
		return HostAVX512, 64
	case cpu.X86.HasAVX2:
		return HostAVX2, 32
	case cpu.X86.HasSSE2:
		return HostSSE2, 16
	}
	return HostScalar, 0
}
