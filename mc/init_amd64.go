//go:build amd64 && !purego

package mc

import (
	_ "github.com/cwbudde/algo-mc/mc/internal/arch/amd64/avx2"   // register AVX2 routines
	_ "github.com/cwbudde/algo-mc/mc/internal/arch/amd64/avx512" // register AVX-512 routines
	_ "github.com/cwbudde/algo-mc/mc/internal/arch/amd64/sse2"   // register SSE2 routines
	_ "github.com/cwbudde/algo-mc/mc/internal/arch/amd64/ssse3"  // register SSSE3 routines
)
