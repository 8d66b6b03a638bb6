//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detectExtensions reads the SSSE3 and AVX-512BW bits on amd64 systems.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access.
func detectExtensions() Extensions {
	return Extensions{
		HasSSSE3:    cpu.X86.HasSSSE3,
		HasAVX512BW: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
	}
}
