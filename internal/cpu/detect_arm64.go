//go:build arm64

package cpu

// detectExtensions is empty on arm64: NEON is reported by vcpu.Features and
// no tier depends on further extensions.
func detectExtensions() Extensions {
	return Extensions{}
}
