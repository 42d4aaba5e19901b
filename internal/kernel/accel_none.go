//go:build !amd64 && !arm64

package kernel

func accelInfo() (features []string, accelerated bool) {
	return nil, false
}
