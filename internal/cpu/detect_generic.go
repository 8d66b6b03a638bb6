//go:build !amd64 && !arm64

package cpu

// detectExtensions is the fallback for other architectures.
func detectExtensions() Extensions {
	return Extensions{}
}
