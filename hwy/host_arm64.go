//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectHost() (HostLevel, int) {
	switch {
	case cpu.ARM64.HasSVE:
		// Only the architectural minimum is known without reading the
		// vector length register.
		return HostSVE, 16
	case cpu.ARM64.HasASIMD:
		// Always true on ARMv8-A.
		return HostNEON, 16
	}
	return HostScalar, 0
}
