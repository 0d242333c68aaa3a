//go:build !amd64 && !arm64

package hwy

func detectHost() (HostLevel, int) {
	return HostScalar, 0
}
